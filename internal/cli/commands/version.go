/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/suparena/dynamics"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		// version needs no configuration
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			info := dynamics.GetVersionInfo()
			out := cmd.OutOrStdout()

			titleColor := color.New(color.FgCyan, color.Bold)
			valueColor := color.New(color.FgWhite)

			for _, row := range [][2]string{
				{"dynlint version: ", info.Version},
				{"Git commit: ", info.GitCommit},
				{"Build date: ", info.BuildDate},
				{"Go version: ", info.GoVersion},
			} {
				titleColor.Fprint(out, row[0])
				valueColor.Fprintln(out, row[1])
			}
		},
	}
}
