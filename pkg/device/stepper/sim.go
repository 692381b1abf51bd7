package stepper

import (
	"sync"
	"time"

	"github.com/golang/glog"
)

// Sim simulates a stepper motor in wall-clock time. A distance-mode
// run finishes after the time the configured volume takes at the
// configured velocity, a continuous run lasts until Stop.
type Sim struct {
	StepsPerRev uint32

	lock        sync.Mutex
	forward     bool
	unitsPerRev uint32
	velocity    uint32
	volume      uint32
	distance    bool
	enabled     bool
	moving      bool
	timer       *time.Timer
	onComplete  func()
}

// NewSim creates a simulated motor.
func NewSim(stepsPerRev uint32) *Sim {
	return &Sim{StepsPerRev: stepsPerRev, forward: true}
}

// SetDirection implements Motor.
func (s *Sim) SetDirection(forward bool) {
	s.lock.Lock()
	s.forward = forward
	s.lock.Unlock()
}

// SetUnitsPerRev implements Motor.
func (s *Sim) SetUnitsPerRev(units uint32) {
	s.lock.Lock()
	s.unitsPerRev = units
	s.lock.Unlock()
}

// SetVelocity implements Motor.
func (s *Sim) SetVelocity(unitsPerMin uint32) {
	s.lock.Lock()
	s.velocity = unitsPerMin
	s.lock.Unlock()
}

// SetVolume implements Motor.
func (s *Sim) SetVolume(units uint32) {
	s.lock.Lock()
	s.volume = units
	s.lock.Unlock()
}

// SetDistanceMode implements Motor.
func (s *Sim) SetDistanceMode(distance bool) {
	s.lock.Lock()
	s.distance = distance
	s.lock.Unlock()
}

// DistanceMode implements Motor.
func (s *Sim) DistanceMode() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.distance
}

// Enable implements Motor.
func (s *Sim) Enable() {
	s.lock.Lock()
	s.enabled = true
	s.lock.Unlock()
}

// Disable implements Motor.
func (s *Sim) Disable() {
	s.lock.Lock()
	s.enabled = false
	s.lock.Unlock()
}

// Start implements Motor.
func (s *Sim) Start() {
	s.lock.Lock()
	defer s.lock.Unlock()
	if !s.enabled || s.moving {
		return
	}
	s.moving = true
	if !s.distance {
		glog.V(2).Infof("sim motor: continuous run at %d units/min, %.1f steps/s",
			s.velocity, s.stepRateLocked())
		return
	}
	d := s.runDurationLocked()
	glog.V(2).Infof("sim motor: run %d units at %d units/min (%s)",
		s.volume, s.velocity, d)
	s.timer = time.AfterFunc(d, s.runDone)
}

// Stop implements Motor.
func (s *Sim) Stop() {
	s.lock.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.moving = false
	s.lock.Unlock()
}

// IsMoving implements Motor.
func (s *Sim) IsMoving() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.moving
}

// IsEnabled implements Motor.
func (s *Sim) IsEnabled() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.enabled
}

// OnRunComplete implements CompletionNotifier.
func (s *Sim) OnRunComplete(fn func()) {
	s.lock.Lock()
	s.onComplete = fn
	s.lock.Unlock()
}

// StepRate returns the simulated step frequency in steps per second.
func (s *Sim) StepRate() float64 {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.stepRateLocked()
}

func (s *Sim) stepRateLocked() float64 {
	if s.unitsPerRev == 0 {
		return 0
	}
	return float64(s.velocity) * float64(s.StepsPerRev) /
		(float64(s.unitsPerRev) * 60)
}

func (s *Sim) runDurationLocked() time.Duration {
	if s.velocity == 0 {
		return 0
	}
	return time.Duration(float64(s.volume) / float64(s.velocity) *
		float64(time.Minute))
}

func (s *Sim) runDone() {
	s.lock.Lock()
	if s.timer == nil {
		s.lock.Unlock()
		return
	}
	s.timer = nil
	s.moving = false
	fn := s.onComplete
	s.lock.Unlock()
	if fn != nil {
		fn()
	}
}
