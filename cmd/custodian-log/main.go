// Command custodian-log views and analyzes provisioning event logs.
//
// Log files are written by custodian-device when run with -event-log.
//
// Usage:
//
//	custodian-log <command> [flags] <file.clog>
//
// Examples:
//
//	# View all events
//	custodian-log view device.clog
//
//	# View only join attempts
//	custodian-log view --category join device.clog
//
//	# Follow a single attempt
//	custodian-log view --attempt 3f2c9a1e device.clog
//
//	# Export to JSONL
//	custodian-log export -o device.jsonl device.clog
//
//	# Show statistics
//	custodian-log stats device.clog
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wifi-custodian/custodian-go/cmd/custodian-log/commands"
	"github.com/wifi-custodian/custodian-go/pkg/version"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "custodian-log",
		Short:         "Provisioning event log analyzer",
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(commands.ViewCmd())
	root.AddCommand(commands.StatsCmd())
	root.AddCommand(commands.ExportCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
