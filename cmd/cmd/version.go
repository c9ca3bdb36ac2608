package cmd

import (
	"fmt"

	"github.com/ostafen/imgsniff/internal/env"
	"github.com/spf13/cobra"
)

func DefineVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", env.AppName)
			fmt.Fprintf(out, "Version:    %s\n", env.Version)
			fmt.Fprintf(out, "Commit:     %s\n", env.CommitHash)
			fmt.Fprintf(out, "Build Time: %s\n", env.BuildTime)
		},
	}
}
