package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgallion1/lecturemap/internal/parser"
)

// readInput returns the raw bytes named by args: a file path, or stdin when
// the argument is "-" or missing.
func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, "", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return data, args[0], nil
}

// readSummary loads a Markdown summary. Markdown, text and stdin input are
// used verbatim; other supported documents are converted first.
func readSummary(cmd *cobra.Command, args []string, in *inputOptions) (string, error) {
	data, path, err := readInput(cmd, args)
	if err != nil {
		return "", err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case "", ".md", ".markdown", ".txt":
		return string(data), nil
	}
	summary, _, err := parser.Summary(filepath.Base(path), data, parser.Options{PDFFallbackPdftotext: in.pdftotext})
	if err != nil {
		return "", fmt.Errorf("convert %s: %w", path, err)
	}
	return summary, nil
}
