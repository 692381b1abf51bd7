package eeprom

import "fmt"

// Mem is an in-memory Device, fresh cells read back as Erased.
type Mem struct {
	cells [Size]byte
}

// NewMem creates a Mem with all cells erased.
func NewMem() *Mem {
	m := &Mem{}
	for i := range m.cells {
		m.cells[i] = Erased
	}
	return m
}

// ReadByte implements Device.
func (m *Mem) ReadByte(addr uint16) (byte, error) {
	if int(addr) >= Size {
		return 0, fmt.Errorf("address out of range: %#x", addr)
	}
	return m.cells[addr], nil
}

// WriteByte implements Device.
func (m *Mem) WriteByte(addr uint16, b byte) error {
	if int(addr) >= Size {
		return fmt.Errorf("address out of range: %#x", addr)
	}
	m.cells[addr] = b
	return nil
}
