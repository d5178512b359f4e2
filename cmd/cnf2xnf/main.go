// Command cnf2xnf recognizes XOR (parity) constraints hidden in a CNF
// formula and rewrites them as explicit XOR lines in an extended
// DIMACS dialect. Grounded on original_source/cnf2xnf/cnf2xnf.c's
// main(), restructured around github.com/hashicorp/cli the way
// hashicorp/nomad structures its single-purpose CLI commands.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/cli"
)

const version = "1.0.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	app := cli.NewCLI("cnf2xnf", version)
	app.Args = args
	app.Commands = map[string]cli.CommandFactory{
		"transform": func() (cli.Command, error) {
			return &TransformCommand{}, nil
		},
	}

	// The reference tool takes no subcommand verb; default bare
	// invocations (flags/files with no leading "transform") to it so
	// `cnf2xnf input output` keeps working the way the original did.
	if len(args) == 0 || (args[0] != "transform" && args[0] != "-h" && args[0] != "--help" && args[0] != "--version") {
		app.Args = append([]string{"transform"}, args...)
	}

	status, err := app.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return status
}
