package pump

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/pump.go/pkg/device/display"
	"github.com/robotalks/pump.go/pkg/device/eeprom"
	fx "github.com/robotalks/pump.go/pkg/framework"
	"github.com/robotalks/pump.go/pkg/l1"
	"github.com/robotalks/pump.go/pkg/l1/msgs"
	pmsgs "github.com/robotalks/pump.go/pkg/pump/msgs"
)

type fakeMotor struct {
	calls   []string
	moving  bool
	enabled bool
	dist    bool
	forward bool
	vel     uint32
	vol     uint32
	upr     uint32
}

func (m *fakeMotor) SetDirection(forward bool) {
	m.forward = forward
	m.calls = append(m.calls, "SetDirection")
}

func (m *fakeMotor) SetUnitsPerRev(units uint32) {
	m.upr = units
	m.calls = append(m.calls, "SetUnitsPerRev")
}

func (m *fakeMotor) SetVelocity(unitsPerMin uint32) {
	m.vel = unitsPerMin
	m.calls = append(m.calls, "SetVelocity")
}

func (m *fakeMotor) SetVolume(units uint32) {
	m.vol = units
	m.calls = append(m.calls, "SetVolume")
}

func (m *fakeMotor) SetDistanceMode(distance bool) {
	m.dist = distance
	m.calls = append(m.calls, "SetDistanceMode")
}

func (m *fakeMotor) DistanceMode() bool { return m.dist }

func (m *fakeMotor) Enable() {
	m.enabled = true
	m.calls = append(m.calls, "Enable")
}

func (m *fakeMotor) Disable() {
	m.enabled = false
	m.calls = append(m.calls, "Disable")
}

func (m *fakeMotor) Start() {
	if m.enabled && !m.moving {
		m.moving = true
	}
	m.calls = append(m.calls, "Start")
}

func (m *fakeMotor) Stop() {
	m.moving = false
	m.calls = append(m.calls, "Stop")
}

func (m *fakeMotor) IsMoving() bool  { return m.moving }
func (m *fakeMotor) IsEnabled() bool { return m.enabled }

type countingDev struct {
	eeprom.Device
	saves int
}

func (d *countingDev) WriteByte(addr uint16, b byte) error {
	if addr == addrSavedMark {
		d.saves++
	}
	return d.Device.WriteByte(addr, b)
}

type harness struct {
	t     *testing.T
	loop  *fx.Loop
	ctl   *Controller
	buf   *display.Buffer
	motor *fakeMotor
	dev   *countingDev
}

func newHarness(t *testing.T) *harness {
	h := &harness{
		t:     t,
		buf:   display.NewBuffer(),
		motor: &fakeMotor{},
		dev:   &countingDev{Device: eeprom.NewMem()},
	}
	h.ctl = NewController(h.buf, h.motor, h.dev)
	require.NoError(t, h.ctl.Boot())
	h.loop = fx.NewLoop()
	h.ctl.AddToLoop(h.loop)
	return h
}

func (h *harness) cycle() {
	h.loop.RunOnce(context.Background())
}

func (h *harness) press(b Button) {
	h.loop.PostMessage(&PressEdge{Button: b})
	h.cycle()
}

func (h *harness) turn(forward bool, n int) {
	for i := 0; i < n; i++ {
		h.loop.PostMessage(&TurnEdge{Forward: forward})
		h.cycle()
	}
}

func (h *harness) line(row int) string {
	return h.buf.Snapshot().Lines[row]
}

// toPage rotates forward from the flow page to the target page,
// starting at home.
func (h *harness) toPage(p Page) {
	h.press(ButtonSelect)
	for h.ctl.CurrentPage() != p {
		h.turn(true, 1)
	}
}

func TestBootShowsHome(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, "PUMP OFF    FLOW", h.line(0))
	require.Equal(t, "       500UL/MIN", h.line(1))
	require.Equal(t, PageHome, h.ctl.CurrentPage())
	require.Equal(t, ModeMenu, h.ctl.CurrentMode())
	// first load persists defaults
	require.Equal(t, 1, h.dev.saves)
}

func TestPageRotation(t *testing.T) {
	h := newHarness(t)
	h.press(ButtonSelect)
	require.Equal(t, PageFlow, h.ctl.CurrentPage())
	for _, want := range []Page{PageVolume, PageMode, PageUnits, PageExit, PageFlow} {
		h.turn(true, 1)
		require.Equal(t, want, h.ctl.CurrentPage())
	}
	// backward from flow wraps to exit
	h.turn(false, 1)
	require.Equal(t, PageExit, h.ctl.CurrentPage())
	h.turn(false, 1)
	require.Equal(t, PageUnits, h.ctl.CurrentPage())
}

func TestExitReturnsHome(t *testing.T) {
	h := newHarness(t)
	h.toPage(PageExit)
	require.Equal(t, "EXIT <          ", h.line(0))
	h.press(ButtonSelect)
	require.Equal(t, PageHome, h.ctl.CurrentPage())
	require.Equal(t, "PUMP OFF    FLOW", h.line(0))
}

func TestRotateIgnoredOnHome(t *testing.T) {
	h := newHarness(t)
	before := h.buf.Snapshot()
	h.turn(true, 3)
	require.Equal(t, PageHome, h.ctl.CurrentPage())
	require.Equal(t, before.Lines, h.buf.Snapshot().Lines)
}

func TestEditFlowValue(t *testing.T) {
	h := newHarness(t)
	h.press(ButtonSelect) // home -> flow
	h.press(ButtonSelect) // menu -> edit
	require.Equal(t, ModeEdit, h.ctl.CurrentMode())
	snap := h.buf.Snapshot()
	require.True(t, snap.CursorOn)
	require.Equal(t, returnCol, snap.CursorCol)

	h.turn(false, 3) // cursor to the hundreds digit
	require.Equal(t, 12, h.buf.Snapshot().CursorCol)
	h.press(ButtonSelect) // edit -> value
	require.Equal(t, ModeValue, h.ctl.CurrentMode())
	h.turn(true, 1) // 500 -> 600
	require.Equal(t, "         +  600<", h.line(1))
	// settings untouched until the edit is committed
	require.Equal(t, uint16(500), h.ctl.Settings().ULPerMin)

	h.press(ButtonSelect) // value -> edit
	h.turn(true, 3)       // cursor back to return column
	h.press(ButtonSelect) // edit -> menu, commits
	require.Equal(t, ModeMenu, h.ctl.CurrentMode())
	require.Equal(t, uint16(600), h.ctl.Settings().ULPerMin)
	require.False(t, h.buf.Snapshot().CursorOn)
	// one save at boot, one at commit
	require.Equal(t, 2, h.dev.saves)

	// persisted copy matches
	set, err := h.ctl.Store.Load(Settings{})
	require.NoError(t, err)
	require.Equal(t, uint16(600), set.ULPerMin)
}

func TestDigitWrapNoCarry(t *testing.T) {
	h := newHarness(t)
	h.press(ButtonSelect)
	h.press(ButtonSelect)
	h.turn(false, 1) // cursor to ones digit
	h.press(ButtonSelect)
	h.turn(false, 1) // 0 wraps to 9
	require.Equal(t, "         +  509<", h.line(1))
	h.turn(true, 1) // back to 0
	require.Equal(t, "         +  500<", h.line(1))
}

func TestSignToggleAndCommit(t *testing.T) {
	h := newHarness(t)
	h.press(ButtonSelect)
	h.press(ButtonSelect)
	h.turn(false, 8) // clamps at the sign column
	require.Equal(t, 9, h.buf.Snapshot().CursorCol)
	h.press(ButtonSelect) // toggles the sign, stays in edit
	require.Equal(t, ModeEdit, h.ctl.CurrentMode())
	require.Equal(t, "         -  500<", h.line(1))
	// not committed yet
	require.True(t, h.ctl.Settings().Forward)

	h.turn(true, 6)
	h.press(ButtonSelect)
	require.False(t, h.ctl.Settings().Forward)

	h.press(ButtonStart)
	require.False(t, h.motor.forward)
}

func TestCommitClampsValues(t *testing.T) {
	h := newHarness(t)
	h.press(ButtonSelect)
	h.press(ButtonSelect)
	h.turn(false, 5) // cursor to the highest flow digit
	h.press(ButtonSelect)
	h.turn(true, 9) // 500 -> 90500
	h.press(ButtonSelect)
	h.turn(true, 5)
	h.press(ButtonSelect)
	require.Equal(t, uint16(0xffff), h.ctl.Settings().ULPerMin)

	h.turn(true, 1) // flow -> volume
	h.press(ButtonSelect)
	h.turn(false, 9) // cursor to the highest volume digit
	h.press(ButtonSelect)
	h.turn(true, 1) // 500 -> 100000500
	h.press(ButtonSelect)
	h.turn(true, 9)
	h.press(ButtonSelect)
	require.Equal(t, uint32(0xffffff), h.ctl.Settings().VolumeUL)
}

func TestStartSequence(t *testing.T) {
	h := newHarness(t)
	h.press(ButtonStart)
	require.Equal(t, []string{
		"SetDirection", "SetUnitsPerRev", "SetVolume", "SetVelocity",
		"Enable", "Start",
	}, h.motor.calls)
	require.True(t, h.motor.moving)
	require.Equal(t, uint32(500), h.motor.vel)
	require.Equal(t, uint32(230), h.motor.upr)
	require.Equal(t, "PUMP  ON    FLOW", h.line(0))
}

func TestVelocityCommittedBeforeStart(t *testing.T) {
	h := newHarness(t)
	h.press(ButtonSelect)
	h.press(ButtonSelect)
	h.turn(false, 1)
	h.press(ButtonSelect)
	h.turn(true, 5) // 500 -> 505
	h.press(ButtonSelect)
	h.turn(true, 1)
	h.press(ButtonSelect) // commit 505
	h.press(ButtonStart)
	require.True(t, h.motor.moving)
	require.Equal(t, uint32(505), h.motor.vel)
}

func TestStartWhileMovingStops(t *testing.T) {
	h := newHarness(t)
	h.press(ButtonStart)
	require.True(t, h.motor.moving)
	h.motor.calls = nil
	h.press(ButtonStart)
	// stop, then auto-disable in the same cycle
	require.Equal(t, []string{"Stop", "Disable"}, h.motor.calls)
	require.False(t, h.motor.moving)
	require.Equal(t, "PUMP OFF    FLOW", h.line(0))
}

func TestStartRefusedOutsideMenu(t *testing.T) {
	h := newHarness(t)
	h.press(ButtonSelect)
	h.press(ButtonSelect) // edit mode
	h.press(ButtonStart)
	require.Empty(t, h.motor.calls)
	require.False(t, h.motor.moving)
}

func TestStartStopsEvenWhileEditing(t *testing.T) {
	h := newHarness(t)
	h.press(ButtonStart)
	require.True(t, h.motor.moving)
	h.press(ButtonSelect) // home -> flow
	h.press(ButtonSelect) // edit mode while running
	h.motor.calls = nil
	h.press(ButtonStart)
	require.Contains(t, h.motor.calls, "Stop")
	require.False(t, h.motor.moving)
}

func TestModeToggle(t *testing.T) {
	h := newHarness(t)
	h.toPage(PageMode)
	require.Equal(t, "<FLOW           ", h.line(0))
	h.press(ButtonSelect)
	require.True(t, h.motor.dist)
	require.Equal(t, " FLOW           ", h.line(0))
	require.Equal(t, "<VOLUME         ", h.line(1))
	h.press(ButtonSelect)
	require.False(t, h.motor.dist)
}

func TestModeToggleRefusedWhileMoving(t *testing.T) {
	h := newHarness(t)
	h.press(ButtonStart)
	h.toPage(PageMode)
	h.motor.calls = nil
	h.press(ButtonSelect)
	require.NotContains(t, h.motor.calls, "SetDistanceMode")
	require.False(t, h.motor.dist)
}

func TestRunCompleteAutoDisables(t *testing.T) {
	h := newHarness(t)
	h.press(ButtonStart)
	require.True(t, h.motor.enabled)
	// the run finishes on its own
	h.motor.moving = false
	h.loop.PostMessage(&RunComplete{})
	h.cycle()
	require.False(t, h.motor.enabled)
	require.Equal(t, "PUMP OFF    FLOW", h.line(0))
}

func TestStartTakesPrecedence(t *testing.T) {
	h := newHarness(t)
	h.loop.PostMessage(&PressEdge{Button: ButtonSelect})
	h.loop.PostMessage(&PressEdge{Button: ButtonStart})
	h.cycle()
	// start consumed the cycle, the select did not navigate
	require.Equal(t, PageHome, h.ctl.CurrentPage())
	require.True(t, h.motor.moving)
}

func TestSelectTakesPrecedenceOverRotate(t *testing.T) {
	h := newHarness(t)
	h.press(ButtonSelect) // flow page
	h.loop.PostMessage(&TurnEdge{Forward: true})
	h.loop.PostMessage(&PressEdge{Button: ButtonSelect})
	h.cycle()
	require.Equal(t, PageFlow, h.ctl.CurrentPage())
	require.Equal(t, ModeEdit, h.ctl.CurrentMode())
}

type fakeCommand struct {
	msg     fx.Message
	replies []fx.Message
}

func (c *fakeCommand) Msg() fx.Message { return c.msg }

func (c *fakeCommand) Done(msg fx.Message) error {
	c.replies = append(c.replies, msg)
	return nil
}

func TestRemotePressCommand(t *testing.T) {
	h := newHarness(t)
	cmd := &fakeCommand{msg: &pmsgs.PumpPress{Button: pmsgs.ButtonSelect}}
	h.loop.PostMessage(&l1.CommandMsg{Command: cmd})
	h.cycle()
	require.Equal(t, PageFlow, h.ctl.CurrentPage())
	require.Len(t, cmd.replies, 1)
	require.IsType(t, (*msgs.CommandOK)(nil), cmd.replies[0])
}

func TestRemoteTurnCommand(t *testing.T) {
	h := newHarness(t)
	h.press(ButtonSelect)
	cmd := &fakeCommand{msg: &pmsgs.PumpTurn{Forward: true}}
	h.loop.PostMessage(&l1.CommandMsg{Command: cmd})
	h.cycle()
	require.Equal(t, PageVolume, h.ctl.CurrentPage())
	require.Len(t, cmd.replies, 1)
	require.IsType(t, (*msgs.CommandOK)(nil), cmd.replies[0])
}

func TestRemoteStatusQuery(t *testing.T) {
	h := newHarness(t)
	cmd := &fakeCommand{msg: &pmsgs.PumpStatusQuery{}}
	h.loop.PostMessage(&l1.CommandMsg{Command: cmd})
	h.cycle()
	require.Len(t, cmd.replies, 1)
	reply, ok := cmd.replies[0].(*pmsgs.PumpStatusReply)
	require.True(t, ok)
	require.NotNil(t, reply.Status)
	require.False(t, reply.Status.Running)
	require.Equal(t, uint32(500), reply.Status.Settings.UlPerMin)
	require.Equal(t, uint32(230), reply.Status.Settings.UnitsPerRev)
}

func TestRemoteUnknownButtonRejected(t *testing.T) {
	h := newHarness(t)
	cmd := &fakeCommand{msg: &pmsgs.PumpPress{Button: 42}}
	h.loop.PostMessage(&l1.CommandMsg{Command: cmd})
	h.cycle()
	require.Equal(t, PageHome, h.ctl.CurrentPage())
	require.Len(t, cmd.replies, 1)
	require.IsType(t, (*msgs.CommandErr)(nil), cmd.replies[0])
}
