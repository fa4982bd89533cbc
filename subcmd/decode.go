package subcmd

import (
	"strconv"

	"github.com/but80/midicc/midi/enums"
	"github.com/but80/midicc/midi/log"
	"github.com/but80/midicc/midi/u7"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var Decode = cli.Command{
	Name:      "decode",
	Aliases:   []string{"d"},
	Usage:     "Shows control change functions for controller numbers",
	ArgsUsage: "<number>...",
	Flags: withLogFlags(
		cli.BoolFlag{
			Name:  "json, j",
			Usage: `Shows in JSON format`,
		},
	),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			cli.ShowCommandHelp(ctx, "decode")
			return cli.NewExitError("", 1)
		}
		setLogLevel(ctx)
		ccs := []enums.ControlFunction{}
		log.Debugf("decoding %d numbers", ctx.NArg())
		log.Enter()
		defer log.Leave()
		for _, arg := range ctx.Args() {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return cli.NewExitError(errors.Errorf("Invalid controller number: %q", arg), 1)
			}
			v, err := u7.New(n)
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			cc := enums.Decode(v)
			log.Debugf("%d -> %s", n, cc)
			if cc.IsUndefined() {
				log.Warnf("Controller %d is reserved by the MIDI specification", n)
			}
			ccs = append(ccs, cc)
		}
		if err := printEntries(ctx.App.Writer, ccs, ctx.Bool("json")); err != nil {
			return cli.NewExitError(err, 1)
		}
		return nil
	},
}
