package display

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func writeStr(t *testing.T, b *Buffer, row, col int, s string) {
	require.NoError(t, b.SetCursor(row, col))
	for i := 0; i < len(s); i++ {
		require.NoError(t, b.Write(s[i]))
	}
}

func TestBufferWriteAndSnapshot(t *testing.T) {
	b := NewBuffer()
	writeStr(t, b, 0, 0, "PUMP")
	writeStr(t, b, 1, 10, "UL/MIN")
	s := b.Snapshot()
	require.Equal(t, "PUMP            ", s.Lines[0])
	require.Equal(t, "          UL/MIN", s.Lines[1])
}

func TestBufferEntryBackward(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, b.SetEntry(EntryBackward))
	writeStr(t, b, 1, 14, "321")
	s := b.Snapshot()
	require.Equal(t, "            123 ", s.Lines[1])
}

func TestBufferClear(t *testing.T) {
	b := NewBuffer()
	writeStr(t, b, 0, 0, "X")
	rev := b.Rev()
	require.NoError(t, b.Clear())
	s := b.Snapshot()
	require.Equal(t, "                ", s.Lines[0])
	require.Equal(t, 0, s.CursorRow)
	require.Equal(t, 0, s.CursorCol)
	require.True(t, s.Rev > rev)
}

func TestBufferGlyphMapping(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, b.SetCursor(1, 15))
	require.NoError(t, b.Write(GlyphReturn))
	s := b.Snapshot()
	require.Equal(t, "               <", s.Lines[1])
}

func TestBufferCursorRange(t *testing.T) {
	b := NewBuffer()
	require.Error(t, b.SetCursor(2, 0))
	require.Error(t, b.SetCursor(0, 16))
	require.NoError(t, b.SetCursor(1, 15))
	// write at the last column must not advance out of range
	require.NoError(t, b.Write('A'))
	require.NoError(t, b.Write('B'))
	s := b.Snapshot()
	require.Equal(t, "               B", s.Lines[1])
}
