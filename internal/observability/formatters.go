// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchingScore outputs a human-readable summary of a computed score.
func (p *Printer) PrintMatchingScore(score *types.MatchingScore) {
	if score == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:          %3d  %s\n", score.OverallMatchScore, score.OverallExplanation))
	sb.WriteString(fmt.Sprintf("Technical:        %3d  %s\n", score.TechnicalSkillsScore, score.TechnicalSkillsExplanation))
	sb.WriteString(fmt.Sprintf("Soft skills:      %3d  %s\n", score.SoftSkillsScore, score.SoftSkillsExplanation))
	sb.WriteString(fmt.Sprintf("Experience:       %3d  %s\n", score.ExperienceScore, score.ExperienceExplanation))
	sb.WriteString(fmt.Sprintf("Qualifications:   %3d\n", score.QualificationsScore))
	sb.WriteString(fmt.Sprintf("Responsibilities: %3d\n", score.KeyResponsibilitiesScore))

	if len(score.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		appendList(&sb, score.Strengths)
	}
	if len(score.Gaps) > 0 {
		sb.WriteString("\nGaps:\n")
		appendList(&sb, score.Gaps)
	}
	for _, suggestion := range score.ImprovementSuggestions {
		sb.WriteString("\n" + suggestion + "\n")
	}

	p.printBox("Matching Score", sb.String())
}

// PrintValidationResult outputs a human-readable summary of one validation pass.
func (p *Printer) PrintValidationResult(name string, res *types.ValidationResult) {
	if res == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Valid:      %t\n", res.IsValid))
	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n", res.ConfidenceScore))

	if len(res.Issues) > 0 {
		sb.WriteString("\nIssues:\n")
		shown := res.Issues
		if len(shown) > maxItemsToShow {
			shown = shown[:maxItemsToShow]
		}
		for _, issue := range shown {
			sb.WriteString(fmt.Sprintf("  [%s] %s: %s\n", issue.Severity, issue.Field, issue.Description))
		}
		if remaining := len(res.Issues) - len(shown); remaining > 0 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", remaining))
		}
	}

	p.printBox("Validation: "+name, sb.String())
}

func appendList(sb *strings.Builder, items []string) {
	shown := items
	if len(shown) > maxItemsToShow {
		shown = shown[:maxItemsToShow]
	}
	for _, item := range shown {
		sb.WriteString("  - " + item + "\n")
	}
	if remaining := len(items) - len(shown); remaining > 0 {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", remaining))
	}
}
