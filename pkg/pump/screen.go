package pump

import (
	"github.com/robotalks/pump.go/pkg/device/display"
	fx "github.com/robotalks/pump.go/pkg/framework"
)

// Page enumerates the screen pages.
type Page int

// Pages, in rotation order. Home sits outside the rotation ring.
const (
	PageHome Page = iota
	PageFlow
	PageVolume
	PageMode
	PageUnits
	PageExit
)

// Mode enumerates the interaction modes of a page.
type Mode int

// Interaction modes
const (
	ModeMenu Mode = iota
	ModeEdit
	ModeValue
)

// returnCol is the column of the return glyph, also the initial
// cursor column when entering edit mode.
const returnCol = display.Cols - 1

// fieldStartOf returns the first column of the editable field on the
// data line. The cursor may not move left of it.
func fieldStartOf(p Page) int {
	switch p {
	case PageFlow:
		return 9
	case PageVolume:
		return 6
	case PageUnits:
		return 10
	}
	return returnCol
}

// hasDataLine indicates the page shows a value on the second line.
func hasDataLine(p Page) bool {
	switch p {
	case PageHome, PageFlow, PageVolume, PageUnits:
		return true
	}
	return false
}

// View is everything the renderer needs to draw a full screen.
type View struct {
	Page         Page
	Value        uint32
	Sign         bool
	Running      bool
	DistanceMode bool
}

// Screen draws pages on a character panel.
type Screen struct {
	Disp display.Display
}

// Render draws the full screen for the view and leaves the write
// position at the return column.
func (s *Screen) Render(v View) error {
	var errs fx.AggregatedError
	errs.Add(s.Disp.Clear())
	var line [display.Cols]byte
	blankLine(&line)
	switch v.Page {
	case PageHome:
		copy(line[0:], "PUMP")
		if v.Running {
			copy(line[6:], "ON")
		} else {
			copy(line[5:], "OFF")
		}
		if v.DistanceMode {
			copy(line[10:], "VOLUME")
		} else {
			copy(line[12:], "FLOW")
		}
	case PageFlow:
		copy(line[0:], "UL/MIN")
	case PageVolume:
		copy(line[0:], "VOL(UL)")
	case PageUnits:
		copy(line[0:], "UL/REV")
	case PageMode:
		if !v.DistanceMode {
			line[0] = display.GlyphReturn
		}
		copy(line[1:], "FLOW")
	case PageExit:
		copy(line[0:], "EXIT")
		line[5] = display.GlyphReturn
	}
	errs.Add(s.writeLine(0, &line))
	if v.Page == PageMode {
		blankLine(&line)
		if v.DistanceMode {
			line[0] = display.GlyphReturn
		}
		copy(line[1:], "VOLUME")
		errs.Add(s.writeLine(1, &line))
	}
	if hasDataLine(v.Page) {
		errs.Add(s.writeDataLine(v))
	}
	errs.Add(s.Disp.SetCursor(1, returnCol))
	return errs.Aggregate()
}

// writeDataLine draws the second line right to left from the return
// column: the unit suffix (home) or return glyph, then the value
// digits padded with blanks to the field start.
func (s *Screen) writeDataLine(v View) error {
	var errs fx.AggregatedError
	errs.Add(s.Disp.SetCursor(1, returnCol))
	errs.Add(s.Disp.SetEntry(display.EntryBackward))
	if v.Page == PageHome {
		suffix := "UL/MIN"
		if v.DistanceMode {
			suffix = "UL"
		}
		for i := len(suffix) - 1; i >= 0; i-- {
			errs.Add(s.Disp.Write(suffix[i]))
		}
	} else {
		errs.Add(s.Disp.Write(display.GlyphReturn))
	}
	width := returnCol - fieldStartOf(v.Page)
	n := 0
	for val := v.Value; val > 0; val /= 10 {
		errs.Add(s.Disp.Write('0' + byte(val%10)))
		n++
	}
	for ; n < width; n++ {
		errs.Add(s.Disp.Write(' '))
	}
	errs.Add(s.Disp.SetEntry(display.EntryForward))
	if v.Page == PageFlow {
		// the sign occupies the field start column
		errs.Add(s.Disp.Write(' '))
		errs.Add(s.Disp.Write(signGlyph(v.Sign)))
	}
	return errs.Aggregate()
}

// RedrawDigit updates a single digit cell on the data line.
func (s *Screen) RedrawDigit(col int, digit byte) error {
	var errs fx.AggregatedError
	errs.Add(s.Disp.SetCursor(1, col))
	errs.Add(s.Disp.Write('0' + digit))
	return errs.Aggregate()
}

// DrawSign updates the direction sign cell on the flow page.
func (s *Screen) DrawSign(col int, plus bool) error {
	var errs fx.AggregatedError
	errs.Add(s.Disp.SetCursor(1, col))
	errs.Add(s.Disp.Write(signGlyph(plus)))
	return errs.Aggregate()
}

// PlaceCursor moves the cursor on the data line.
func (s *Screen) PlaceCursor(col int) error {
	return s.Disp.SetCursor(1, col)
}

func (s *Screen) writeLine(row int, line *[display.Cols]byte) error {
	var errs fx.AggregatedError
	errs.Add(s.Disp.SetCursor(row, 0))
	for _, ch := range line {
		errs.Add(s.Disp.Write(ch))
	}
	return errs.Aggregate()
}

func signGlyph(plus bool) byte {
	if plus {
		return '+'
	}
	return '-'
}

func blankLine(line *[display.Cols]byte) {
	for i := range line {
		line[i] = ' '
	}
}
