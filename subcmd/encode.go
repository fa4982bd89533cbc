package subcmd

import (
	"fmt"

	"github.com/but80/midicc/midi/enums"
	"github.com/but80/midicc/midi/log"
	"github.com/but80/midicc/midi/util"
	"github.com/urfave/cli"
)

var Encode = cli.Command{
	Name:      "encode",
	Aliases:   []string{"e"},
	Usage:     "Shows controller numbers for control change functions",
	ArgsUsage: "<name|number>...",
	Flags: withLogFlags(
		cli.BoolFlag{
			Name:  "hex, x",
			Usage: `Dumps controller numbers as hex bytes`,
		},
		cli.BoolFlag{
			Name:  "json, j",
			Usage: `Shows in JSON format`,
		},
	),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			cli.ShowCommandHelp(ctx, "encode")
			return cli.NewExitError("", 1)
		}
		setLogLevel(ctx)
		ccs := []enums.ControlFunction{}
		log.Debugf("encoding %d functions", ctx.NArg())
		log.Enter()
		defer log.Leave()
		for _, arg := range ctx.Args() {
			cc, err := enums.ParseControlFunction(arg)
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			log.Debugf("%s -> %s", arg, enums.Encode(cc))
			ccs = append(ccs, cc)
		}
		if ctx.Bool("hex") {
			b := make([]byte, len(ccs))
			for i, cc := range ccs {
				b[i] = enums.EncodeRaw(cc)
			}
			fmt.Fprintln(ctx.App.Writer, util.Hex(b))
			return nil
		}
		if err := printEntries(ctx.App.Writer, ccs, ctx.Bool("json")); err != nil {
			return cli.NewExitError(err, 1)
		}
		return nil
	},
}
