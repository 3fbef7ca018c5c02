package parser

import (
	"strings"
	"testing"

	"github.com/dgallion1/lecturemap/internal/mindmap"
)

func TestTextParser_ParagraphsShareLeadNode(t *testing.T) {
	input := "Stacks are last in first out.\nPush and pop hit the top.\n\nQueues are first in first out."
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tree.Title != "notes" {
		t.Errorf("expected title %q, got %q", "notes", tree.Title)
	}
	if len(tree.Children) != 1 {
		t.Fatalf("expected 1 untitled child, got %d", len(tree.Children))
	}
	want := "Stacks are last in first out.\nPush and pop hit the top.\n\nQueues are first in first out."
	if tree.Children[0].Text != want {
		t.Errorf("expected %q, got %q", want, tree.Children[0].Text)
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader(" \n\n\t\n"), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Title != "empty" {
		t.Errorf("expected title %q, got %q", "empty", tree.Title)
	}
	if len(tree.Children) != 0 {
		t.Errorf("expected 0 children for empty input, got %d", len(tree.Children))
	}
}

func TestTextParser_ListLinesNormalised(t *testing.T) {
	input := "Key Concepts:\n• Stacks are LIFO\n* Queues are FIFO\n1) Push first\n    then pop\n  - nested point"
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader(input), "week2.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(tree.Children))
	}

	want := "Key Concepts:\n\n- Stacks are LIFO\n- Queues are FIFO\n1. Push first\n  - then pop\n  - nested point"
	if tree.Children[0].Text != want {
		t.Errorf("expected %q, got %q", want, tree.Children[0].Text)
	}
}

func TestTextParser_UnderlinedHeadings(t *testing.T) {
	input := "Data Structures\n===============\nIntro line.\n\nStacks\n------\n- LIFO\n\nQueues\n------\n- FIFO"
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader(input), "ds.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tree.Children) != 1 {
		t.Fatalf("expected 1 top-level section, got %d", len(tree.Children))
	}
	top := tree.Children[0]
	if top.Title != "Data Structures" || top.Level != 1 {
		t.Errorf("expected level 1 %q, got level %d %q", "Data Structures", top.Level, top.Title)
	}
	if top.Text != "Intro line." {
		t.Errorf("expected %q, got %q", "Intro line.", top.Text)
	}
	if len(top.Children) != 2 {
		t.Fatalf("expected 2 subsections, got %d", len(top.Children))
	}
	for i, want := range []struct{ title, text string }{{"Stacks", "- LIFO"}, {"Queues", "- FIFO"}} {
		sec := top.Children[i]
		if sec.Title != want.title || sec.Level != 2 || sec.Text != want.text {
			t.Errorf("child[%d]: got level %d %q %q", i, sec.Level, sec.Title, sec.Text)
		}
	}
}

func TestTextParser_RulesAndBlankRunsDropped(t *testing.T) {
	input := "Para one.\n\n\n   \n-----\n\nPara two."
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader(input), "gaps.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(tree.Children))
	}
	if want := "Para one.\n\nPara two."; tree.Children[0].Text != want {
		t.Errorf("expected %q, got %q", want, tree.Children[0].Text)
	}
}

func TestTextParser_BulletedSummaryReachesOutline(t *testing.T) {
	input := "Key Concepts\n============\n- Stacks are LIFO\n- Queues are FIFO\n\nPros:\n  constant time push\n  cache friendly\n"
	summary, title, err := Summary("week3.txt", []byte(input), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if title != "week3" {
		t.Errorf("expected title %q, got %q", "week3", title)
	}

	items := make(map[string][]string)
	for _, sec := range mindmap.Outline(summary) {
		items[sec.ID] = sec.Items
	}
	check := func(id string, want []string) {
		t.Helper()
		got := items[id]
		if strings.Join(got, "|") != strings.Join(want, "|") {
			t.Errorf("section %s: expected %q, got %q", id, want, got)
		}
	}
	check("key-concepts", []string{"Stacks are LIFO", "Queues are FIFO"})
	check("advantages", []string{"constant time push", "cache friendly"})
}
