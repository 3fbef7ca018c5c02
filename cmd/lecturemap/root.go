package main

import (
	"github.com/spf13/cobra"
)

type inputOptions struct {
	pdftotext bool
}

func newRootCommand() *cobra.Command {
	var in inputOptions

	rootCmd := &cobra.Command{
		Use:           "lecturemap",
		Short:         "Turn lecture-note summaries into mind maps and flowcharts",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&in.pdftotext, "pdftotext", true, "Fall back to pdftotext when reading PDF input")

	rootCmd.AddCommand(newGraphCommand(&in))
	rootCmd.AddCommand(newTreeCommand(&in))
	rootCmd.AddCommand(newOutlineCommand(&in))
	rootCmd.AddCommand(newMermaidCommand(&in))
	rootCmd.AddCommand(newValidateCommand())

	return rootCmd
}
