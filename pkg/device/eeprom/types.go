// Package eeprom abstracts the byte-addressed persistent memory
// holding pump settings.
package eeprom

// Size is the capacity in bytes of the supported parts.
const Size = 128

// Erased is the value of a never-written cell.
const Erased byte = 0xff

// Device defines byte-level access to a persistent memory.
// Each written byte is committed independently, there is no
// transactional grouping across addresses.
type Device interface {
	ReadByte(addr uint16) (byte, error)
	WriteByte(addr uint16, b byte) error
}
