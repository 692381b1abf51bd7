package main

//go-build: CGO_ENABLED=0

import (
	"flag"

	"github.com/robotalks/pump.go/pkg/framework"
	"github.com/robotalks/pump.go/pkg/l1"
	env "github.com/robotalks/pump.go/pkg/l1/env/controller"
	"github.com/robotalks/pump.go/pkg/pump"
)

func init() {
	env.SetControllerType("pump", l1.ControllerMeta{Description: "Peristaltic Pump Controller"})
	env.SetupFlags()
	pump.SetupFlags()
}

func main() {
	flag.Parse()

	env := env.NewConfig().MustNewEnv()
	unit := pump.NewConfig().MustNewUnit(env.Registrar)
	defer unit.Close()
	framework.NewLoop().Add(env, unit).RunOrFail()
}
