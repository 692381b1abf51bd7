package pump

// Factory defaults applied when the persistent memory holds no
// saved settings.
const (
	DefaultStepsPerRev uint32 = 800
	DefaultUnitsPerRev uint16 = 230
	DefaultULPerMin    uint16 = 500
	DefaultVolumeUL    uint32 = 500
)

// Upper bounds applied when committing edited values.
const (
	MaxWordValue uint32 = 0xffff
	MaxVolume    uint32 = 0xffffff
)

// Settings are the persisted operating parameters of the pump.
type Settings struct {
	// UnitsPerRev calibrates microliters per full revolution.
	UnitsPerRev uint16
	// ULPerMin is the flow rate in microliters per minute.
	ULPerMin uint16
	// VolumeUL is the run volume in microliters for volume mode.
	VolumeUL uint32
	// Forward selects the rotation direction.
	Forward bool
}

// DefaultSettings returns the factory defaults.
func DefaultSettings() Settings {
	return Settings{
		UnitsPerRev: DefaultUnitsPerRev,
		ULPerMin:    DefaultULPerMin,
		VolumeUL:    DefaultVolumeUL,
		Forward:     true,
	}
}

// ClampWord saturates an edited value for 16-bit settings.
func ClampWord(v uint32) uint16 {
	if v > MaxWordValue {
		v = MaxWordValue
	}
	return uint16(v)
}

// ClampVolume saturates an edited volume.
func ClampVolume(v uint32) uint32 {
	if v > MaxVolume {
		v = MaxVolume
	}
	return v
}
