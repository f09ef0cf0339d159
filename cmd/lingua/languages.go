package main

import (
	"fmt"

	"github.com/oukeidos/lingua/internal/language"
	"github.com/spf13/cobra"
)

func newLanguagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Run: func(cmd *cobra.Command, args []string) {
			langs := language.Supported()
			fmt.Fprintln(cmd.OutOrStdout(), "Supported Languages:")
			fmt.Fprintf(cmd.OutOrStdout(), "  %-35s [%s]\n", language.AutoDisplayName, language.Auto)
			for _, l := range langs {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-35s [%s]\n", l.Name, l.Code)
			}
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}
