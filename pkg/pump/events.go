package pump

import (
	fx "github.com/robotalks/pump.go/pkg/framework"
)

// Button identifies a button on the head unit.
type Button int

// Buttons
const (
	ButtonStart Button = iota
	ButtonSelect
)

// PressEdge is posted for each button press edge.
type PressEdge struct {
	Button Button
}

// NewMessage implements Message.
func (m *PressEdge) NewMessage() fx.Message { return &PressEdge{} }

// TurnEdge is posted for each rotary knob detent.
type TurnEdge struct {
	Forward bool
}

// NewMessage implements Message.
func (m *TurnEdge) NewMessage() fx.Message { return &TurnEdge{} }

// RunComplete is posted when a volume-mode run finishes on its own,
// so the controller observes the stop without waiting for the next
// timed cycle.
type RunComplete struct {
}

// NewMessage implements Message.
func (m *RunComplete) NewMessage() fx.Message { return &RunComplete{} }

// Events aggregates the input edges visible to one control cycle.
// Multiple edges of the same kind collapse into one.
type Events struct {
	Start  bool
	Select bool
	Rotate bool
	// Forward is the knob direction, valid when Rotate is set.
	Forward bool
}
