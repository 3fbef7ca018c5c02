package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgallion1/lecturemap/internal/mermaid"
	"github.com/dgallion1/lecturemap/internal/mindmap"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newGraphCommand(in *inputOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "graph [file|-]",
		Short: "Print the positioned mind-map graph as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := readSummary(cmd, args, in)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), mindmap.BuildGraph(summary))
		},
	}
}

func newTreeCommand(in *inputOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tree [file|-]",
		Short: "Print the nested mind-map hierarchy as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := readSummary(cmd, args, in)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), mindmap.BuildHierarchy(summary))
		},
	}
}

func newOutlineCommand(in *inputOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "outline [file|-]",
		Short: "Show the categorized sections of a summary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := readSummary(cmd, args, in)
			if err != nil {
				return err
			}
			sections := mindmap.Outline(summary)
			out := cmd.OutOrStdout()
			if asJSON {
				if sections == nil {
					sections = []mindmap.Section{}
				}
				return writeJSON(out, sections)
			}
			if len(sections) == 0 {
				fmt.Fprintln(out, "No sections found")
				return nil
			}

			var rows [][]string
			for _, sec := range sections {
				for i, item := range sec.Items {
					title := ""
					if i == 0 {
						title = sec.Title
					}
					rows = append(rows, []string{title, strconv.Itoa(i + 1), item})
				}
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Section", "#", "Item"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print sections as JSON")
	return cmd
}

func newMermaidCommand(in *inputOptions) *cobra.Command {
	var orientation string
	opts := mermaid.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "mermaid [file|-]",
		Short: "Print flowchart text for a summary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := mermaid.ParseOrientation(orientation)
			if err != nil {
				return err
			}
			opts.Orientation = o
			summary, err := readSummary(cmd, args, in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), mermaid.Generate(summary, opts))
			return nil
		},
	}
	cmd.Flags().StringVarP(&orientation, "orientation", "o", string(mermaid.TopDown), "Layout direction (TD or LR)")
	cmd.Flags().IntVar(&opts.MaxNodes, "max-nodes", mermaid.DefaultMaxNodes, "Maximum number of nodes")
	cmd.Flags().IntVar(&opts.MaxChildrenPerParent, "max-children", mermaid.DefaultMaxChildrenPerParent, "Maximum bullet children per heading")
	return cmd
}

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file|-]",
		Short: "Check flowchart text before rendering",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, _, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if err := mermaid.Validate(strings.TrimSpace(string(data))); err != nil {
				return fmt.Errorf("invalid diagram: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
}
