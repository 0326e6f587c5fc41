package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/artmetrics/internal/version"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		line := version.Info()
		if versionShort {
			line = version.Short()
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), line)
		return err
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
	RootCmd.AddCommand(versionCmd)
}
