package msgs

import (
	"testing"

	"github.com/stretchr/testify/require"

	l1msgs "github.com/robotalks/pump.go/pkg/l1/msgs"
)

func TestPressCommandOverWire(t *testing.T) {
	typed, err := l1msgs.TypedFrom(&PumpPress{Button: ButtonSelect})
	require.NoError(t, err)
	require.True(t, typed.IsCommand())

	pkt, err := typed.Encode()
	require.NoError(t, err)
	decoded, err := l1msgs.DecodeTyped(pkt)
	require.NoError(t, err)
	msg, err := decoded.Decode()
	require.NoError(t, err)
	press, ok := msg.(*PumpPress)
	require.True(t, ok)
	require.Equal(t, ButtonSelect, press.Button)
}

func TestStatusEventOverWire(t *testing.T) {
	status := &PumpStatus{
		Running:      true,
		DistanceMode: true,
		Settings: &PumpSettings{
			UnitsPerRev: 230,
			UlPerMin:    500,
			VolumeUl:    1200,
			Forward:     true,
		},
	}
	typed, err := l1msgs.TypedFrom(status)
	require.NoError(t, err)
	require.True(t, typed.IsEvent())

	pkt, err := typed.Encode()
	require.NoError(t, err)
	decoded, err := l1msgs.DecodeTyped(pkt)
	require.NoError(t, err)
	msg, err := decoded.Decode()
	require.NoError(t, err)
	got, ok := msg.(*PumpStatus)
	require.True(t, ok)
	require.True(t, got.Running)
	require.True(t, got.DistanceMode)
	require.NotNil(t, got.Settings)
	require.Equal(t, uint32(1200), got.Settings.VolumeUl)
}

func TestUnknownTypeRejected(t *testing.T) {
	typed := &l1msgs.Typed{TypeId: GroupPump | 0x7fff}
	_, err := typed.Decode()
	require.Error(t, err)
}
