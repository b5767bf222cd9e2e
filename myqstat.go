// `myqstat` -- compact, colorized overview of a PBS batch cluster
//
// Reads the qstat -f, pbsnodes and (optionally) ganglia reports and prints them as one table per
// verb: jobs, nodes, users.  Run `myqstat help` for brief help.

package main

import (
	"fmt"
	"os"

	"github.com/tdegeus/mate-cluster/cmd"
	"github.com/tdegeus/mate-cluster/cmd/jobs"
	"github.com/tdegeus/mate-cluster/cmd/nodes"
	"github.com/tdegeus/mate-cluster/cmd/users"
	"github.com/tdegeus/mate-cluster/common"
	"github.com/tdegeus/mate-cluster/status"
)

const MyqstatVersion = "0.3.0"

func main() {
	command := commandLine()
	if command.VerboseFlag() {
		common.Log.LowerLevelTo(status.LogLevelInfo)
	}
	err := command.Perform(os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func commandLine() cmd.ReportCommand {
	out := cmd.CLIOutput()

	// The bare program prints the job table, as qstat itself would.
	verb := "jobs"
	rest := os.Args[1:]
	if len(rest) > 0 && len(rest[0]) > 0 && rest[0][0] != '-' {
		verb = rest[0]
		rest = rest[1:]
	}

	var command cmd.ReportCommand
	switch verb {
	case "help", "-h":
		fmt.Fprintf(out, "Usage: %s [command] [options]\n", os.Args[0])
		fmt.Fprintf(out, "Commands:\n")
		fmt.Fprintf(out, "  jobs     - print the job table (the default)\n")
		fmt.Fprintf(out, "  nodes    - print the compute node table\n")
		fmt.Fprintf(out, "  users    - print the per-owner summary table\n")
		fmt.Fprintf(out, "  version  - print information about the program\n")
		fmt.Fprintf(out, "  help     - print this message\n")
		fmt.Fprintf(out, "Each command accepts -h to further explain options.\n")
		os.Exit(0)
	case "jobs":
		command = jobs.New()
	case "nodes":
		command = nodes.New()
	case "users":
		command = users.New()
	case "version":
		fmt.Printf("myqstat version %s\n", MyqstatVersion)
		os.Exit(0)
	default:
		fmt.Fprintf(out, "Unknown operation %s, try `myqstat help`\n", verb)
		os.Exit(2)
	}

	fs := cmd.NewCLI(verb, command, os.Args[0], true)
	command.Add(fs)
	fs.Parse(rest)
	if err := command.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return command
}
