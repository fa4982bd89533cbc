package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

type LogLevel int

const (
	LogLevel_None LogLevel = iota
	LogLevel_Warn
	LogLevel_Info
	LogLevel_Debug
)

var Level LogLevel = LogLevel_Info

var Output io.Writer = os.Stderr

var cyan = color.New(color.FgCyan)
var yellow = color.New(color.FgYellow)

func Warnf(f string, args ...interface{}) {
	if LogLevel_Warn <= Level {
		yellow.Fprintf(Output, "[WARNING] "+f+"\n", args...)
	}
}

func Infof(f string, args ...interface{}) {
	if LogLevel_Info <= Level {
		fmt.Fprintf(Output, f+"\n", args...)
	}
}

var indent = 0

func Debugf(f string, args ...interface{}) {
	if LogLevel_Debug <= Level {
		cyan.Fprintf(Output, strings.Repeat("  ", indent)+f+"\n", args...)
	}
}

func Enter() {
	indent++
}

func Leave() {
	indent--
}

// SetLevelByFlags applies the --debug, --quiet and --silent flags.
func SetLevelByFlags(debug, quiet, silent bool) {
	if debug {
		Level = LogLevel_Debug
	} else if silent {
		Level = LogLevel_None
	} else if quiet {
		Level = LogLevel_Warn
	}
}
