package pump

import (
	"github.com/golang/glog"

	"github.com/robotalks/pump.go/pkg/device/eeprom"
	fx "github.com/robotalks/pump.go/pkg/framework"
)

// Settings layout in persistent memory. Multi-byte values are stored
// little-endian. addrStepsPerRev is reserved but not written, steps
// per revolution is fixed at build/config time.
const (
	addrSavedMark   uint16 = 0x00
	addrStepsPerRev uint16 = 0x04
	addrUnitsPerRev uint16 = 0x08
	addrVolume      uint16 = 0x12
	addrVelocity    uint16 = 0x16
	addrDirection   uint16 = 0x20

	savedMark byte = 132
)

// Store persists Settings in an eeprom.Device.
type Store struct {
	Dev eeprom.Device
}

// Load reads settings back. When the memory holds no valid settings
// (the saved mark is absent), it returns the provided defaults and
// writes them back so the next boot finds initialized memory.
func (s *Store) Load(defaults Settings) (Settings, error) {
	mark, err := s.Dev.ReadByte(addrSavedMark)
	if err != nil {
		return defaults, err
	}
	if mark != savedMark {
		glog.Info("settings not initialized, saving defaults")
		return defaults, s.Save(defaults)
	}
	set := defaults
	var errs fx.AggregatedError
	if v, err := s.readWord(addrUnitsPerRev); err == nil {
		set.UnitsPerRev = v
	} else {
		errs.Add(err)
	}
	if v, err := s.readWord(addrVelocity); err == nil {
		set.ULPerMin = v
	} else {
		errs.Add(err)
	}
	if v, err := s.readVolume(); err == nil {
		set.VolumeUL = v
	} else {
		errs.Add(err)
	}
	if b, err := s.Dev.ReadByte(addrDirection); err == nil {
		set.Forward = b != 0
	} else {
		errs.Add(err)
	}
	return set, errs.Aggregate()
}

// Save writes settings out. The saved mark is written first, then
// direction, units per revolution, velocity and volume. Each byte is
// committed independently, failures are aggregated.
func (s *Store) Save(set Settings) error {
	var errs fx.AggregatedError
	put := func(addr uint16, b byte) {
		errs.Add(s.Dev.WriteByte(addr, b))
	}
	put(addrSavedMark, savedMark)
	var dir byte
	if set.Forward {
		dir = 1
	}
	put(addrDirection, dir)
	put(addrUnitsPerRev, byte(set.UnitsPerRev))
	put(addrUnitsPerRev+1, byte(set.UnitsPerRev>>8))
	put(addrVelocity, byte(set.ULPerMin))
	put(addrVelocity+1, byte(set.ULPerMin>>8))
	put(addrVolume, byte(set.VolumeUL))
	put(addrVolume+1, byte(set.VolumeUL>>8))
	put(addrVolume+2, byte(set.VolumeUL>>16))
	return errs.Aggregate()
}

func (s *Store) readWord(addr uint16) (uint16, error) {
	lo, err := s.Dev.ReadByte(addr)
	if err != nil {
		return 0, err
	}
	hi, err := s.Dev.ReadByte(addr + 1)
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

func (s *Store) readVolume() (uint32, error) {
	var v uint32
	for i := uint16(0); i < 3; i++ {
		b, err := s.Dev.ReadByte(addrVolume + i)
		if err != nil {
			return 0, err
		}
		v |= uint32(b) << (8 * i)
	}
	return v, nil
}
