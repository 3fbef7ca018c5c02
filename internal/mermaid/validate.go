package mermaid

import (
	"errors"
	"strings"
)

var (
	ErrEmptyCode          = errors.New("mermaid code is empty")
	ErrMissingGraph       = errors.New("mermaid code has no graph declaration")
	ErrUnbalancedBrackets = errors.New("unbalanced brackets in mermaid syntax")
)

// Validate is a cheap sanity gate run before handing diagram text to a
// renderer. It is not a grammar check.
func Validate(code string) error {
	if strings.TrimSpace(code) == "" {
		return ErrEmptyCode
	}
	if !strings.Contains(code, "graph") {
		return ErrMissingGraph
	}
	if strings.Count(code, "[") != strings.Count(code, "]") {
		return ErrUnbalancedBrackets
	}
	return nil
}
