package main

import (
	"os"

	"github.com/but80/midicc/subcmd"
	"github.com/urfave/cli"
)

var version string

func init() {
	if version == "" {
		version = "unknown"
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "midicc"
	app.Version = version
	app.Usage = "Names MIDI control change numbers"
	app.Authors = []cli.Author{
		{
			Name:  "but80",
			Email: "mersenne.sister@gmail.com",
		},
	}
	app.HelpName = "midicc"

	app.Commands = []cli.Command{
		subcmd.List,
		subcmd.Decode,
		subcmd.Encode,
	}

	app.Action = func(ctx *cli.Context) error {
		cli.ShowAppHelp(ctx)
		return nil
	}
	return app
}

func main() {
	newApp().Run(os.Args)
}
