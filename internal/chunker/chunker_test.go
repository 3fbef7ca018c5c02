package chunker

import (
	"strings"
	"testing"
)

func TestParagraphs_BlankLineRuns(t *testing.T) {
	input := "First paragraph.\nStill first.\n\nSecond.\n\n\n\nThird."
	got := Paragraphs(input)
	want := []string{"First paragraph.\nStill first.", "Second.", "Third."}
	if len(got) != len(want) {
		t.Fatalf("expected %d paragraphs, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("paragraph[%d]: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestParagraphs_Empty(t *testing.T) {
	if got := Paragraphs("   \n\n  "); len(got) != 0 {
		t.Errorf("expected no paragraphs, got %q", got)
	}
}

func TestSentences_BasicSplit(t *testing.T) {
	got := Sentences("Stacks are LIFO. Queues are FIFO. Trees branch")
	want := []string{"Stacks are LIFO", "Queues are FIFO", "Trees branch"}
	if len(got) != len(want) {
		t.Fatalf("expected %d sentences, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sentence[%d]: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSentences_PeriodInsideParens(t *testing.T) {
	got := Sentences("Heaps are trees (see ch. 4 for details). They are balanced.")
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %q", len(got), got)
	}
	if !strings.Contains(got[0], "ch. 4") {
		t.Errorf("expected parenthesised period to be kept, got %q", got[0])
	}
}

func TestSentences_TrailingAndRepeatedPeriods(t *testing.T) {
	got := Sentences("One... Two.")
	want := []string{"One", "Two"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %q", want, got)
	}
}

func TestSentences_UnclosedParenDoesNotProtect(t *testing.T) {
	got := Sentences("Open (paren. Next")
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %q", got)
	}
}

func TestLimit(t *testing.T) {
	parts := []string{"a", "b", "c"}
	if got := Limit(parts, 2); len(got) != 2 {
		t.Errorf("expected 2, got %d", len(got))
	}
	if got := Limit(parts, 10); len(got) != 3 {
		t.Errorf("expected 3, got %d", len(got))
	}
}
