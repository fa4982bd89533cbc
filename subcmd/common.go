package subcmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/but80/midicc/midi/enums"
	"github.com/but80/midicc/midi/log"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var logFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "debug, d",
		Usage: `Show debug messages`,
	},
	cli.BoolFlag{
		Name:  "quiet, q",
		Usage: `Suppress information messages`,
	},
	cli.BoolFlag{
		Name:  "silent, Q",
		Usage: `Do not output any messages`,
	},
}

func withLogFlags(flags ...cli.Flag) []cli.Flag {
	return append(flags, logFlags...)
}

func setLogLevel(ctx *cli.Context) {
	log.SetLevelByFlags(ctx.Bool("debug"), ctx.Bool("quiet"), ctx.Bool("silent"))
}

type entry struct {
	Number int           `json:"number"`
	Name   string        `json:"name"`
	Group  enums.CCGroup `json:"group"`
}

func newEntry(cc enums.ControlFunction) entry {
	return entry{
		Number: int(enums.EncodeRaw(cc)),
		Name:   cc.Name(),
		Group:  cc.Group(),
	}
}

func printEntries(w io.Writer, ccs []enums.ControlFunction, asJSON bool) error {
	if asJSON {
		entries := make([]entry, len(ccs))
		for i, cc := range ccs {
			entries[i] = newEntry(cc)
		}
		j, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return errors.WithStack(err)
		}
		fmt.Fprintln(w, string(j))
		return nil
	}
	for _, cc := range ccs {
		fmt.Fprintf(w, "%3d  %s\n", enums.EncodeRaw(cc), cc.Name())
	}
	return nil
}
