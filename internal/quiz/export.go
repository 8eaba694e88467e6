package quiz

import (
	"strings"
)

// ExportCaption renders the quiz as plain text for a video description.
func ExportCaption(q Quiz) string {
	lines := []string{}
	if question := strings.TrimSpace(q.Question); question != "" {
		lines = append(lines, question, "")
	}

	names := make([]Entrant, 0, len(q.Names))
	for _, n := range q.Names {
		names = append(names, Entrant{Name: n})
	}
	for i, e := range Normalize(names) {
		lines = append(lines, Label(i+1, e.Name, true))
	}

	if footer := strings.TrimSpace(q.Footer); footer != "" {
		lines = append(lines, "", footer)
	}
	return strings.Join(lines, "\n")
}
