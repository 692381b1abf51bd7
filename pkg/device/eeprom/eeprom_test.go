package eeprom

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemFreshReadsErased(t *testing.T) {
	m := NewMem()
	b, err := m.ReadByte(0x00)
	require.NoError(t, err)
	require.Equal(t, Erased, b)
}

func TestMemReadBack(t *testing.T) {
	m := NewMem()
	require.NoError(t, m.WriteByte(0x12, 0x34))
	b, err := m.ReadByte(0x12)
	require.NoError(t, err)
	require.Equal(t, byte(0x34), b)
}

func TestMemAddressRange(t *testing.T) {
	m := NewMem()
	_, err := m.ReadByte(Size)
	require.Error(t, err)
	require.Error(t, m.WriteByte(Size, 0))
}

func TestFilePersistsAcrossOpens(t *testing.T) {
	dir, err := ioutil.TempDir("", "eeprom")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "pump.eeprom")

	d, err := OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, d.WriteByte(0x20, 0x01))
	require.NoError(t, d.Close())

	d, err = OpenFile(path)
	require.NoError(t, err)
	defer d.Close()
	b, err := d.ReadByte(0x20)
	require.NoError(t, err)
	require.Equal(t, byte(0x01), b)
}

func TestFileFreshReadsErased(t *testing.T) {
	dir, err := ioutil.TempDir("", "eeprom")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	d, err := OpenFile(filepath.Join(dir, "fresh.eeprom"))
	require.NoError(t, err)
	defer d.Close()
	b, err := d.ReadByte(0x00)
	require.NoError(t, err)
	require.Equal(t, Erased, b)
}
