package pump

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/pump.go/pkg/device/eeprom"
)

func TestStoreLoadUninitialized(t *testing.T) {
	mem := eeprom.NewMem()
	store := &Store{Dev: mem}
	set, err := store.Load(DefaultSettings())
	require.NoError(t, err)
	require.Equal(t, DefaultSettings(), set)

	// defaults must have been written back
	mark, err := mem.ReadByte(addrSavedMark)
	require.NoError(t, err)
	require.Equal(t, savedMark, mark)

	// second load reads the persisted copy
	set, err = store.Load(Settings{})
	require.NoError(t, err)
	require.Equal(t, DefaultSettings(), set)
}

func TestStoreSaveLayout(t *testing.T) {
	mem := eeprom.NewMem()
	store := &Store{Dev: mem}
	require.NoError(t, store.Save(Settings{
		UnitsPerRev: 0x1234,
		ULPerMin:    0xabcd,
		VolumeUL:    0x123456,
		Forward:     false,
	}))
	expect := map[uint16]byte{
		addrSavedMark:       savedMark,
		addrDirection:       0,
		addrUnitsPerRev:     0x34,
		addrUnitsPerRev + 1: 0x12,
		addrVelocity:        0xcd,
		addrVelocity + 1:    0xab,
		addrVolume:          0x56,
		addrVolume + 1:      0x34,
		addrVolume + 2:      0x12,
	}
	for addr, want := range expect {
		b, err := mem.ReadByte(addr)
		require.NoError(t, err)
		require.Equal(t, want, b, "addr %#x", addr)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	mem := eeprom.NewMem()
	store := &Store{Dev: mem}
	saved := Settings{
		UnitsPerRev: 230,
		ULPerMin:    505,
		VolumeUL:    1200,
		Forward:     true,
	}
	require.NoError(t, store.Save(saved))
	got, err := store.Load(DefaultSettings())
	require.NoError(t, err)
	require.Equal(t, saved, got)
}
