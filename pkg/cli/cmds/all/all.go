// Package all imports all command providers.
package all

import (
	_ "github.com/robotalks/pump.go/pkg/cli/cmds/pump"
)
