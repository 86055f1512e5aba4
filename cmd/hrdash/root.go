package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "hrdash",
		Short: "Employee dashboard server and client",
		Long: `hrdash serves a paginated, filterable, sortable employee list over HTTP,
together with department and position reference data and a small web UI.

The same binary queries a running server from the command line.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "YAML config file (default $HRDASH_CONFIG)")

	root.AddCommand(
		newServeCmd(&cfgFile),
		newEmployeesCmd(),
		newVersionCmd(),
	)
	return root
}
