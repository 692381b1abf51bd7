package pump

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/pump.go/pkg/device/display"
)

func renderOn(t *testing.T, v View) *display.Buffer {
	buf := display.NewBuffer()
	s := &Screen{Disp: buf}
	require.NoError(t, s.Render(v))
	return buf
}

func TestRenderHomeFlowMode(t *testing.T) {
	buf := renderOn(t, View{Page: PageHome, Value: 500})
	snap := buf.Snapshot()
	require.Equal(t, "PUMP OFF    FLOW", snap.Lines[0])
	require.Equal(t, "       500UL/MIN", snap.Lines[1])
}

func TestRenderHomeRunningVolumeMode(t *testing.T) {
	buf := renderOn(t, View{Page: PageHome, Value: 1200, Running: true, DistanceMode: true})
	snap := buf.Snapshot()
	require.Equal(t, "PUMP  ON  VOLUME", snap.Lines[0])
	require.Equal(t, "          1200UL", snap.Lines[1])
}

func TestRenderFlowPage(t *testing.T) {
	buf := renderOn(t, View{Page: PageFlow, Value: 500, Sign: true})
	snap := buf.Snapshot()
	require.Equal(t, "UL/MIN          ", snap.Lines[0])
	// sign at the field start, digits right-justified with
	// leading blanks, return glyph at the last column
	require.Equal(t, "         +  500<", snap.Lines[1])
	require.Equal(t, 1, snap.CursorRow)
	require.Equal(t, returnCol, snap.CursorCol)
}

func TestRenderFlowPageBackward(t *testing.T) {
	buf := renderOn(t, View{Page: PageFlow, Value: 65535, Sign: false})
	snap := buf.Snapshot()
	require.Equal(t, "         -65535<", snap.Lines[1])
}

func TestRenderVolumePage(t *testing.T) {
	buf := renderOn(t, View{Page: PageVolume, Value: 500})
	snap := buf.Snapshot()
	require.Equal(t, "VOL(UL)         ", snap.Lines[0])
	require.Equal(t, "            500<", snap.Lines[1])
}

func TestRenderUnitsPage(t *testing.T) {
	buf := renderOn(t, View{Page: PageUnits, Value: 230})
	snap := buf.Snapshot()
	require.Equal(t, "UL/REV          ", snap.Lines[0])
	require.Equal(t, "            230<", snap.Lines[1])
}

func TestRenderModePage(t *testing.T) {
	buf := renderOn(t, View{Page: PageMode})
	snap := buf.Snapshot()
	require.Equal(t, "<FLOW           ", snap.Lines[0])
	require.Equal(t, " VOLUME         ", snap.Lines[1])

	buf = renderOn(t, View{Page: PageMode, DistanceMode: true})
	snap = buf.Snapshot()
	require.Equal(t, " FLOW           ", snap.Lines[0])
	require.Equal(t, "<VOLUME         ", snap.Lines[1])
}

func TestRenderExitPage(t *testing.T) {
	buf := renderOn(t, View{Page: PageExit})
	snap := buf.Snapshot()
	require.Equal(t, "EXIT <          ", snap.Lines[0])
	require.Equal(t, "                ", snap.Lines[1])
}

func TestRenderZeroValueShowsBlanks(t *testing.T) {
	buf := renderOn(t, View{Page: PageUnits, Value: 0})
	snap := buf.Snapshot()
	require.Equal(t, "               <", snap.Lines[1])
}
