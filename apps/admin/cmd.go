package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/impulsa/seguimiento/core"
	"github.com/impulsa/seguimiento/core/student"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	conf   *core.Config
	stuSvc *student.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  sync [-force]            - run a conflict-aware save cycle against the record store")
	fmt.Println("  report                   - print the roster with points, expected points and status")
	fmt.Println("  migrate COMMAND [ARGS]   - run database migrations (goose commands)")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	syncCmd := flag.NewFlagSet("sync", flag.ExitOnError)
	syncForce := syncCmd.Bool("force", false, "proceed with the local-preferring merge even when conflicts are detected")

	switch args[1] {
	case "sync":
		if err := syncCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.sync(*syncForce)
	case "report":
		return cli.report()
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}
