// Package stepper abstracts the stepper motor driving the pump head.
package stepper

// Motor defines the interface of a stepper motor driver.
// Parameters are latched by Start, changing them while a run is in
// progress does not affect the current run.
type Motor interface {
	// SetDirection selects the rotation direction.
	SetDirection(forward bool)
	// SetUnitsPerRev calibrates volume units per full revolution.
	SetUnitsPerRev(units uint32)
	// SetVelocity sets the flow rate in volume units per minute.
	SetVelocity(unitsPerMin uint32)
	// SetVolume sets the run volume used in distance mode.
	SetVolume(units uint32)
	// SetDistanceMode selects between a fixed-volume run (true) and
	// a continuous run (false).
	SetDistanceMode(distance bool)
	// DistanceMode reports the selected run mode.
	DistanceMode() bool
	// Enable energizes the driver.
	Enable()
	// Disable de-energizes the driver. The shaft is free when disabled.
	Disable()
	// Start begins a run using the configured parameters.
	// Ignored unless the driver is enabled and idle.
	Start()
	// Stop aborts the current run. The driver stays enabled.
	Stop()
	// IsMoving reports whether a run is in progress.
	IsMoving() bool
	// IsEnabled reports whether the driver is energized.
	IsEnabled() bool
}

// CompletionNotifier is implemented by motors able to report the end
// of a distance-mode run asynchronously.
type CompletionNotifier interface {
	// OnRunComplete registers a callback invoked from the motor's own
	// goroutine when a distance-mode run finishes on its own.
	OnRunComplete(fn func())
}
