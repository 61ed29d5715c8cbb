package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tasktrio/internal/config"
)

func addVersion(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the application name and version.",
		Run: func(cmd *cobra.Command, _ []string) {
			cfg := config.LoadConfig()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cfg.AppName, cfg.AppVersion)
		},
	}

	topLevel.AddCommand(cmd)
}
