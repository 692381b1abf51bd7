package pump

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/robotalks/pump.go/pkg/device/display"
	"github.com/robotalks/pump.go/pkg/device/eeprom"
	"github.com/robotalks/pump.go/pkg/device/stepper"
	fx "github.com/robotalks/pump.go/pkg/framework"
	"github.com/robotalks/pump.go/pkg/l1"
	"github.com/robotalks/pump.go/pkg/l1/msgs"
	pmsgs "github.com/robotalks/pump.go/pkg/pump/msgs"
)

// Controller implements the operating state machine of the pump:
// screen pages, the menu/edit/value interaction modes, motor
// sequencing and settings persistence. It consumes input edges
// (local or remote) posted to the control loop and drives the
// display and the motor.
type Controller struct {
	// Registrar receives status and display events, optional.
	Registrar l1.Registrar

	Motor stepper.Motor
	Store *Store

	screen Screen

	settings Settings
	page     Page
	mode     Mode
	nextPage Page
	nextMode Mode

	// edit is the value being edited on the current page,
	// re-synced from settings on every full render.
	edit       uint32
	sign       bool
	col        int
	fieldStart int
	dirty      bool

	lastStatus *statusSnap
}

// NewController creates a Controller over the given devices.
func NewController(disp display.Display, motor stepper.Motor, dev eeprom.Device) *Controller {
	return &Controller{
		Motor:  motor,
		Store:  &Store{Dev: dev},
		screen: Screen{Disp: disp},
	}
}

// Boot loads persisted settings and renders the home page.
// A load failure falls back to defaults and is logged, the pump must
// come up regardless.
func (c *Controller) Boot() error {
	set, err := c.Store.Load(DefaultSettings())
	if err != nil {
		glog.Errorf("load settings: %v", err)
	}
	c.settings = set
	c.sign = set.Forward
	c.page, c.mode = PageHome, ModeMenu
	c.nextPage, c.nextMode = c.page, c.mode
	return c.render()
}

// Settings returns the current persisted settings.
func (c *Controller) Settings() Settings { return c.settings }

// CurrentPage returns the currently displayed page.
func (c *Controller) CurrentPage() Page { return c.page }

// CurrentMode returns the current interaction mode.
func (c *Controller) CurrentMode() Mode { return c.mode }

// AddToLoop implements LoopAdder.
func (c *Controller) AddToLoop(l *fx.Loop) {
	if n, ok := c.Motor.(stepper.CompletionNotifier); ok {
		n.OnRunComplete(func() {
			l.PostMessage(&RunComplete{})
			l.TriggerNext()
		})
	}
	l.AddController(fx.PrLvControl, c)
	l.AddController(fx.PrLvPostProc, fx.ControlFunc(c.castStatus))
}

// Control implements Controller. Exactly one state transition happens
// per cycle, start takes precedence over select, select over rotate.
func (c *Controller) Control(cc fx.ControlContext) error {
	var errs fx.AggregatedError
	ev := c.gather(cc)
	c.nextPage, c.nextMode = c.page, c.mode
	switch {
	case ev.Start:
		// consumes the cycle, handled with the motor below
	case ev.Select:
		errs.Add(c.onSelect())
	case ev.Rotate:
		errs.Add(c.onRotate(ev.Forward))
	}
	if c.mode == ModeEdit && c.nextMode == ModeMenu {
		errs.Add(c.commit())
	}
	moving := c.Motor.IsMoving()
	if ev.Start && moving {
		c.Motor.Stop()
	} else if ev.Start && !moving && c.nextMode == ModeMenu {
		c.startMotor()
		c.dirty = true
	}
	if !c.Motor.IsMoving() && c.Motor.IsEnabled() {
		c.Motor.Disable()
		c.dirty = true
	}
	if c.dirty {
		errs.Add(c.render())
	}
	if c.nextMode != ModeMenu {
		errs.Add(c.screen.PlaceCursor(c.col))
	}
	c.page, c.mode = c.nextPage, c.nextMode
	c.dirty = false
	return errs.Aggregate()
}

// gather drains the input edges and remote commands addressed to the
// pump from the message store.
func (c *Controller) gather(cc fx.ControlContext) Events {
	var ev Events
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		switch msg := mctx.CurrentMessage().(type) {
		case *PressEdge:
			mctx.MessageTaken()
			switch msg.Button {
			case ButtonStart:
				ev.Start = true
			case ButtonSelect:
				ev.Select = true
			}
		case *TurnEdge:
			mctx.MessageTaken()
			ev.Rotate, ev.Forward = true, msg.Forward
		case *RunComplete:
			mctx.MessageTaken()
		case *l1.CommandMsg:
			if c.handleCommand(msg.Command, &ev) {
				mctx.MessageTaken()
			}
		}
	}))
	return ev
}

// handleCommand maps remote commands onto the same input edges the
// local buttons produce. Unknown commands are left for others.
func (c *Controller) handleCommand(cmd l1.Command, ev *Events) bool {
	switch m := cmd.Msg().(type) {
	case *pmsgs.PumpPress:
		switch m.Button {
		case pmsgs.ButtonStart:
			ev.Start = true
		case pmsgs.ButtonSelect:
			ev.Select = true
		default:
			c.done(cmd, msgs.NewCommandErr(fmt.Errorf("unknown button: %d", m.Button)))
			return true
		}
		c.done(cmd, msgs.NewCommandOK())
	case *pmsgs.PumpTurn:
		ev.Rotate, ev.Forward = true, m.Forward
		c.done(cmd, msgs.NewCommandOK())
	case *pmsgs.PumpStatusQuery:
		c.done(cmd, &pmsgs.PumpStatusReply{Status: c.status()})
	default:
		return false
	}
	return true
}

func (c *Controller) done(cmd l1.Command, reply fx.Message) {
	if err := cmd.Done(reply); err != nil {
		glog.Errorf("command reply: %v", err)
	}
}

func (c *Controller) onSelect() error {
	switch {
	case c.page == PageHome:
		c.nextPage = PageFlow
		c.dirty = true
	case c.page == PageExit:
		c.nextPage = PageHome
		c.dirty = true
	default:
		switch c.mode {
		case ModeMenu:
			if c.page == PageMode {
				// run mode may only change while the motor is idle
				if !c.Motor.IsMoving() {
					c.Motor.SetDistanceMode(!c.Motor.DistanceMode())
					c.dirty = true
				}
			} else {
				c.nextMode = ModeEdit
				c.col = returnCol
				return c.screen.Disp.SetCursorVisible(true)
			}
		case ModeEdit:
			switch {
			case c.col == returnCol:
				c.nextMode = ModeMenu
				c.dirty = true
				return c.screen.Disp.SetCursorVisible(false)
			case c.page == PageFlow && c.col == c.fieldStart:
				c.sign = !c.sign
				return c.screen.DrawSign(c.col, c.sign)
			default:
				c.nextMode = ModeValue
			}
		case ModeValue:
			c.nextMode = ModeEdit
		}
	}
	return nil
}

func (c *Controller) onRotate(forward bool) error {
	if c.page == PageHome {
		return nil
	}
	switch c.mode {
	case ModeMenu:
		c.cyclePage(forward)
	case ModeEdit:
		if forward {
			c.col++
		} else {
			c.col--
		}
		if c.col > returnCol {
			c.col = returnCol
		} else if c.col < c.fieldStart {
			c.col = c.fieldStart
		}
	case ModeValue:
		pos := uint(returnCol - 1 - c.col)
		var digit byte
		c.edit, digit = SpinDigit(c.edit, pos, forward)
		return c.screen.RedrawDigit(c.col, digit)
	}
	return nil
}

func (c *Controller) cyclePage(forward bool) {
	if forward {
		c.nextPage = c.page + 1
		if c.nextPage > PageExit {
			c.nextPage = PageFlow
		}
	} else {
		c.nextPage = c.page - 1
		if c.nextPage == PageHome {
			c.nextPage = PageExit
		}
	}
	c.dirty = true
}

// commit folds the edited value into settings and persists them.
func (c *Controller) commit() error {
	switch c.page {
	case PageFlow:
		c.settings.ULPerMin = ClampWord(c.edit)
		c.settings.Forward = c.sign
	case PageVolume:
		c.settings.VolumeUL = ClampVolume(c.edit)
	case PageUnits:
		c.settings.UnitsPerRev = ClampWord(c.edit)
	}
	return c.Store.Save(c.settings)
}

// startMotor pushes the settings into the motor driver and starts a
// run. Parameters are set before Enable and Start so the run uses the
// latest committed values.
func (c *Controller) startMotor() {
	m := c.Motor
	m.SetDirection(c.settings.Forward)
	m.SetUnitsPerRev(uint32(c.settings.UnitsPerRev))
	m.SetVolume(c.settings.VolumeUL)
	m.SetVelocity(uint32(c.settings.ULPerMin))
	m.Enable()
	m.Start()
}

// render draws the upcoming page in full and re-syncs the edit value
// from settings.
func (c *Controller) render() error {
	v := View{
		Page:         c.nextPage,
		Sign:         c.sign,
		Running:      c.Motor.IsMoving(),
		DistanceMode: c.Motor.DistanceMode(),
	}
	switch c.nextPage {
	case PageHome:
		if v.DistanceMode {
			v.Value = c.settings.VolumeUL
		} else {
			v.Value = uint32(c.settings.ULPerMin)
		}
	case PageFlow:
		c.edit = uint32(c.settings.ULPerMin)
		v.Value = c.edit
	case PageVolume:
		c.edit = c.settings.VolumeUL
		v.Value = c.edit
	case PageUnits:
		c.edit = uint32(c.settings.UnitsPerRev)
		v.Value = c.edit
	}
	c.fieldStart = fieldStartOf(c.nextPage)
	return c.screen.Render(v)
}

func (c *Controller) status() *pmsgs.PumpStatus {
	return &pmsgs.PumpStatus{
		Running:      c.Motor.IsMoving(),
		DistanceMode: c.Motor.DistanceMode(),
		Page:         uint32(c.page),
		Mode:         uint32(c.mode),
		Settings: &pmsgs.PumpSettings{
			UnitsPerRev: uint32(c.settings.UnitsPerRev),
			UlPerMin:    uint32(c.settings.ULPerMin),
			VolumeUl:    c.settings.VolumeUL,
			Forward:     c.settings.Forward,
		},
	}
}

type statusSnap struct {
	running     bool
	distance    bool
	page        Page
	mode        Mode
	unitsPerRev uint16
	ulPerMin    uint16
	volumeUL    uint32
	forward     bool
}

// castStatus publishes a status event whenever the observable state
// changed since the last cycle. Runs at post-processing priority so
// it sees the state this cycle settled on.
func (c *Controller) castStatus(cc fx.ControlContext) error {
	snap := statusSnap{
		running:     c.Motor.IsMoving(),
		distance:    c.Motor.DistanceMode(),
		page:        c.page,
		mode:        c.mode,
		unitsPerRev: c.settings.UnitsPerRev,
		ulPerMin:    c.settings.ULPerMin,
		volumeUL:    c.settings.VolumeUL,
		forward:     c.settings.Forward,
	}
	if c.lastStatus != nil && *c.lastStatus == snap {
		return nil
	}
	c.lastStatus = &snap
	if c.Registrar == nil {
		return nil
	}
	return c.Registrar.SendEvent(cc.Context(), c.status())
}
