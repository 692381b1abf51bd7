package pump

import (
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/pump.go/pkg/cli/sh"
	"github.com/robotalks/pump.go/pkg/pump/msgs"
)

var (
	// PressCmd exposes PumpPress command.
	PressCmd = ishell.Cmd{
		Name:    "pump.press",
		Aliases: []string{"pp"},
		Help:    "start|select",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("BUTTON required"))
				return
			}
			var msg msgs.PumpPress
			switch c.Args[0] {
			case "start":
				msg.Button = msgs.ButtonStart
			case "select", "sel":
				msg.Button = msgs.ButtonSelect
			default:
				c.Err(fmt.Errorf("Unknown button: %q", c.Args[0]))
				return
			}
			sh.DoCommand(c, &msg)
		}),
	}

	// TurnCmd exposes PumpTurn command.
	TurnCmd = ishell.Cmd{
		Name:    "pump.turn",
		Aliases: []string{"pt"},
		Help:    "cw|ccw [COUNT]",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("DIRECTION required"))
				return
			}
			var msg msgs.PumpTurn
			switch c.Args[0] {
			case "cw", "f":
				msg.Forward = true
			case "ccw", "b":
			default:
				c.Err(fmt.Errorf("Unknown direction: %q", c.Args[0]))
				return
			}
			count := 1
			if len(c.Args) > 1 {
				val, err := strconv.Atoi(c.Args[1])
				if err != nil || val < 1 {
					c.Err(fmt.Errorf("Invalid COUNT: %q", c.Args[1]))
					return
				}
				count = val
			}
			for i := 0; i < count; i++ {
				if sh.DoCommand(c, &msg) != nil {
					return
				}
			}
		}),
	}

	// StatusCmd exposes PumpStatusQuery command.
	StatusCmd = ishell.Cmd{
		Name:    "pump.status",
		Aliases: []string{"ps"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.PumpStatusQuery{})
		}),
	}
)

func init() {
	sh.AddCmds(
		&PressCmd,
		&TurnCmd,
		&StatusCmd,
	)
}
