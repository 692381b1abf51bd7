package pump

import (
	"github.com/robotalks/pump.go/pkg/device/display"
	fx "github.com/robotalks/pump.go/pkg/framework"
	"github.com/robotalks/pump.go/pkg/l1"
	pmsgs "github.com/robotalks/pump.go/pkg/pump/msgs"
)

// DisplayCaster publishes the panel content as DisplayUpdate events
// whenever it changed since the last cycle. It requires the display
// to be a Buffer, a physical panel cannot be read back.
type DisplayCaster struct {
	Buf       *display.Buffer
	Registrar l1.Registrar

	lastRev uint64
}

// AddToLoop implements LoopAdder.
func (d *DisplayCaster) AddToLoop(l *fx.Loop) {
	l.AddController(fx.PrLvPostProc, d)
}

// Control implements Controller.
func (d *DisplayCaster) Control(cc fx.ControlContext) error {
	snap := d.Buf.Snapshot()
	if snap.Rev == d.lastRev {
		return nil
	}
	d.lastRev = snap.Rev
	if d.Registrar == nil {
		return nil
	}
	return d.Registrar.SendEvent(cc.Context(), &pmsgs.DisplayUpdate{
		Lines:     snap.Lines[:],
		CursorRow: uint32(snap.CursorRow),
		CursorCol: uint32(snap.CursorCol),
		CursorOn:  snap.CursorOn,
	})
}
