package subcmd

import (
	"github.com/but80/midicc/midi/enums"
	"github.com/but80/midicc/midi/log"
	"github.com/urfave/cli"
)

var List = cli.Command{
	Name:    "list",
	Aliases: []string{"l"},
	Usage:   "Lists control change functions",
	Flags: withLogFlags(
		cli.BoolFlag{
			Name:  "json, j",
			Usage: `Lists in JSON format`,
		},
		cli.StringFlag{
			Name:  "group, g",
			Usage: `Lists only one group (msb|lsb|single|undefined|mode)`,
		},
	),
	Action: func(ctx *cli.Context) error {
		setLogLevel(ctx)
		ccs := enums.All()
		if g := ctx.String("group"); g != "" {
			group, err := enums.ParseCCGroup(g)
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			filtered := []enums.ControlFunction{}
			for _, cc := range ccs {
				if group.Contains(cc) {
					filtered = append(filtered, cc)
				}
			}
			ccs = filtered
			log.Debugf("%d functions in group %s", len(ccs), group)
		}
		if err := printEntries(ctx.App.Writer, ccs, ctx.Bool("json")); err != nil {
			return cli.NewExitError(err, 1)
		}
		return nil
	},
}
