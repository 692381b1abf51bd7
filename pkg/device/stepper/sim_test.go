package stepper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSimStartRequiresEnable(t *testing.T) {
	m := NewSim(800)
	m.SetVelocity(500)
	m.Start()
	require.False(t, m.IsMoving())
	m.Enable()
	m.Start()
	require.True(t, m.IsMoving())
	m.Stop()
	require.False(t, m.IsMoving())
	require.True(t, m.IsEnabled())
}

func TestSimDistanceRunCompletes(t *testing.T) {
	m := NewSim(800)
	m.SetDistanceMode(true)
	m.SetUnitsPerRev(230)
	m.SetVolume(1)
	m.SetVelocity(60000) // 1 unit in 1ms
	doneCh := make(chan struct{})
	m.OnRunComplete(func() { close(doneCh) })
	m.Enable()
	m.Start()
	select {
	case <-doneCh:
	case <-time.After(time.Second):
		t.Fatal("run did not complete")
	}
	require.False(t, m.IsMoving())
	require.True(t, m.IsEnabled())
}

func TestSimStopCancelsRun(t *testing.T) {
	m := NewSim(800)
	m.SetDistanceMode(true)
	m.SetUnitsPerRev(230)
	m.SetVolume(1000)
	m.SetVelocity(1) // far in the future
	completed := make(chan struct{}, 1)
	m.OnRunComplete(func() { completed <- struct{}{} })
	m.Enable()
	m.Start()
	require.True(t, m.IsMoving())
	m.Stop()
	require.False(t, m.IsMoving())
	select {
	case <-completed:
		t.Fatal("stopped run must not report completion")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestSimStepRate(t *testing.T) {
	m := NewSim(800)
	m.SetUnitsPerRev(230)
	m.SetVelocity(230)
	// one revolution per minute
	require.InDelta(t, 800.0/60, m.StepRate(), 1e-9)
}
