//go:build mage
// +build mage

package main

import (
	"os"

	"github.com/magefile/mage/sh"
	"github.com/mattn/go-shellwords"
	"github.com/mattn/go-zglob"
)

func init() {
	os.Setenv("GO111MODULE", "on")
}

func runVWithArgs(cmd string, args ...string) error {
	envArgs, err := shellwords.Parse(os.Getenv("ARGS"))
	if err != nil {
		return err
	}
	return sh.RunV(cmd, append(args, envArgs...)...)
}

// Format code
func Fmt() error {
	files, err := zglob.Glob("./**/*.go")
	if err != nil {
		return err
	}
	for _, file := range files {
		if ok, err := zglob.Match("./_examples/**", file); ok || err != nil {
			continue
		}
		if err := sh.RunV("goimports", "-w", file); err != nil {
			return err
		}
	}
	return nil
}

// Check coding style
func Lint() error {
	return sh.RunV("golangci-lint", "run")
}

// Run test
func Test() error {
	return runVWithArgs("go", "test", "./...")
}

// Run program (ARGS="list --group mode")
func Run() error {
	return runVWithArgs("go", "run", ".")
}

// Build binary
func Build() error {
	return sh.RunV("go", "build", "-o", "midicc", ".")
}
