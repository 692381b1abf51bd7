// Package display abstracts the character display attached to the
// pump head unit.
package display

// Dimensions of the supported character panel.
const (
	Rows = 2
	Cols = 16
)

// Character codes beyond printable ASCII, from the panel's glyph ROM.
const (
	GlyphReturn byte = 0x7f
)

// EntryDir is the direction the write position advances after each
// character.
type EntryDir int

// Entry directions
const (
	EntryForward EntryDir = iota
	EntryBackward
)

// Display defines the write-only interface of a character panel.
// The panel offers no read-back, callers must track content themselves.
type Display interface {
	// Clear blanks the panel and homes the write position.
	Clear() error
	// SetCursor moves the write position (and the visible cursor).
	SetCursor(row, col int) error
	// SetCursorVisible shows or hides the blinking cursor.
	SetCursorVisible(visible bool) error
	// SetEntry selects how the write position advances.
	SetEntry(dir EntryDir) error
	// Write puts a single character at the write position and
	// advances it per the entry direction.
	Write(ch byte) error
}
