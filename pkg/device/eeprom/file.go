package eeprom

import (
	"fmt"
	"io"
	"os"
)

// File is a Device backed by a regular file. Every WriteByte is
// written through immediately, mirroring the per-byte commit of the
// real part.
type File struct {
	f *os.File
}

// OpenFile opens or creates a file-backed device.
func OpenFile(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}
	return &File{f: f}, nil
}

// ReadByte implements Device. Cells beyond the current file size
// read back as Erased.
func (d *File) ReadByte(addr uint16) (byte, error) {
	if int(addr) >= Size {
		return 0, fmt.Errorf("address out of range: %#x", addr)
	}
	var b [1]byte
	_, err := d.f.ReadAt(b[:], int64(addr))
	if err == io.EOF {
		return Erased, nil
	}
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// WriteByte implements Device.
func (d *File) WriteByte(addr uint16, b byte) error {
	if int(addr) >= Size {
		return fmt.Errorf("address out of range: %#x", addr)
	}
	_, err := d.f.WriteAt([]byte{b}, int64(addr))
	return err
}

// Close implements io.Closer.
func (d *File) Close() error {
	return d.f.Close()
}
