package display

import (
	"fmt"
	"sync"
)

// Buffer is an in-memory Display. It stands in for the physical panel
// and lets other components (telemetry, tests) inspect what the
// controller drew.
type Buffer struct {
	lock     sync.Mutex
	cells    [Rows][Cols]byte
	row, col int
	cursorOn bool
	entry    EntryDir
	rev      uint64
}

// Snapshot is a consistent copy of the panel content.
type Snapshot struct {
	Lines     [Rows]string
	CursorRow int
	CursorCol int
	CursorOn  bool
	Rev       uint64
}

// NewBuffer creates a blank Buffer.
func NewBuffer() *Buffer {
	b := &Buffer{}
	b.clearLocked()
	b.rev = 0
	return b
}

// Clear implements Display.
func (b *Buffer) Clear() error {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.clearLocked()
	return nil
}

func (b *Buffer) clearLocked() {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			b.cells[r][c] = ' '
		}
	}
	b.row, b.col = 0, 0
	b.entry = EntryForward
	b.rev++
}

// SetCursor implements Display.
func (b *Buffer) SetCursor(row, col int) error {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return fmt.Errorf("cursor out of range: %d,%d", row, col)
	}
	b.lock.Lock()
	b.row, b.col = row, col
	b.rev++
	b.lock.Unlock()
	return nil
}

// SetCursorVisible implements Display.
func (b *Buffer) SetCursorVisible(visible bool) error {
	b.lock.Lock()
	if b.cursorOn != visible {
		b.cursorOn = visible
		b.rev++
	}
	b.lock.Unlock()
	return nil
}

// SetEntry implements Display.
func (b *Buffer) SetEntry(dir EntryDir) error {
	b.lock.Lock()
	b.entry = dir
	b.lock.Unlock()
	return nil
}

// Write implements Display.
func (b *Buffer) Write(ch byte) error {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.cells[b.row][b.col] = ch
	if b.entry == EntryForward {
		if b.col < Cols-1 {
			b.col++
		}
	} else if b.col > 0 {
		b.col--
	}
	b.rev++
	return nil
}

// Snapshot returns a copy of the current content.
func (b *Buffer) Snapshot() Snapshot {
	b.lock.Lock()
	defer b.lock.Unlock()
	s := Snapshot{
		CursorRow: b.row,
		CursorCol: b.col,
		CursorOn:  b.cursorOn,
		Rev:       b.rev,
	}
	for r := 0; r < Rows; r++ {
		line := make([]byte, Cols)
		for c, ch := range b.cells[r] {
			if ch < 0x20 || ch == GlyphReturn {
				ch = printableGlyph(ch)
			}
			line[c] = ch
		}
		s.Lines[r] = string(line)
	}
	return s
}

// Rev returns the change revision, bumped on every mutation.
func (b *Buffer) Rev() uint64 {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.rev
}

// printableGlyph maps panel glyph codes to an ASCII stand-in for
// snapshots shipped over telemetry.
func printableGlyph(ch byte) byte {
	switch ch {
	case GlyphReturn:
		return '<'
	}
	return '?'
}
