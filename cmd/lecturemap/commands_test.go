package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/lecturemap/internal/mermaid"
)

const lectureSummary = `## Key Concepts
- Stacks are last in first out
- Queues are first in first out

## Examples
- Browser history uses a stack
`

func runCLI(t *testing.T, args []string, stdin string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGraphCommandReadsStdin(t *testing.T) {
	out, err := runCLI(t, []string{"graph"}, lectureSummary)
	require.NoError(t, err)

	var g struct {
		Nodes []struct {
			ID string `json:"id"`
		} `json:"nodes"`
		Edges []json.RawMessage `json:"edges"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &g))
	require.NotEmpty(t, g.Nodes)
	assert.Equal(t, "root", g.Nodes[0].ID)
	assert.Len(t, g.Edges, len(g.Nodes)-1)
}

func TestTreeCommandReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "week1.md")
	require.NoError(t, os.WriteFile(path, []byte(lectureSummary), 0o644))

	out, err := runCLI(t, []string{"tree", path}, "")
	require.NoError(t, err)
	assert.Contains(t, out, `"label": "Lecture Overview"`)
	assert.Contains(t, out, `"label": "Key Concepts"`)
}

func TestOutlineCommandTable(t *testing.T) {
	out, err := runCLI(t, []string{"outline", "-"}, lectureSummary)
	require.NoError(t, err)
	assert.Contains(t, out, "Section")
	assert.Contains(t, out, "Key Concepts")
	assert.Contains(t, out, "Stacks are last in first out")
}

func TestOutlineCommandEmpty(t *testing.T) {
	out, err := runCLI(t, []string{"outline"}, "")
	require.NoError(t, err)
	assert.Equal(t, "No sections found\n", out)

	out, err = runCLI(t, []string{"outline", "--json"}, "")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestMermaidCommand(t *testing.T) {
	out, err := runCLI(t, []string{"mermaid", "--orientation", "LR", "--max-nodes", "4"}, lectureSummary)
	require.NoError(t, err)
	code := strings.TrimSpace(out)
	assert.True(t, strings.HasPrefix(code, "graph LR\n"), code)
	assert.NoError(t, mermaid.Validate(code))
	assert.LessOrEqual(t, strings.Count(code, ":::"), 4)
}

func TestMermaidCommandRejectsOrientation(t *testing.T) {
	_, err := runCLI(t, []string{"mermaid", "-o", "BT"}, lectureSummary)
	require.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	out, err := runCLI(t, []string{"validate"}, "graph TD\n    a[\"x\"]\n")
	require.NoError(t, err)
	assert.Equal(t, "valid\n", out)

	_, err = runCLI(t, []string{"validate"}, "graph TD\n    a[\"x\"\n")
	require.ErrorIs(t, err, mermaid.ErrUnbalancedBrackets)

	_, err = runCLI(t, []string{"validate"}, "")
	require.ErrorIs(t, err, mermaid.ErrEmptyCode)
}

func TestSummaryFromCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outline.csv")
	require.NoError(t, os.WriteFile(path, []byte("section,item\nKey Concepts,Stacks\n,Queues\n"), 0o644))

	out, err := runCLI(t, []string{"outline", "--json", path}, "")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "key-concepts"`)
	assert.Contains(t, out, `"Queues"`)
}
