package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"utgen/internal/domain"
)

// SectionResult reports what happened to one generated section
type SectionResult struct {
	Name    string
	Path    string
	Changed bool
}

// Formatter formats and displays output
type Formatter struct {
	out io.Writer

	header  *color.Color
	group   *color.Color
	entry   *color.Color
	success *color.Color
	warning *color.Color
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{
		out:     out,
		header:  color.New(color.FgGreen),
		group:   color.New(color.FgCyan),
		entry:   color.New(color.FgYellow),
		success: color.New(color.FgGreen),
		warning: color.New(color.FgYellow),
	}
}

// PrintTestList prints the discovered tests as a tree, one branch per group
func (f *Formatter) PrintTestList(mapping *domain.Mapping) {
	if mapping.Count() == 0 {
		f.warning.Fprintln(f.out, "No unit tests found")
		return
	}

	f.header.Fprintf(f.out, "Found %d unit test(s) in %d group(s):\n\n", mapping.Count(), mapping.Len())

	groups := mapping.Groups()
	for i, group := range groups {
		isLastGroup := i == len(groups)-1
		if isLastGroup {
			f.group.Fprintf(f.out, "└── %s\n", group.Key)
		} else {
			f.group.Fprintf(f.out, "├── %s\n", group.Key)
		}

		for j, entry := range group.Entries {
			isLastEntry := j == len(group.Entries)-1

			var prefix string
			if isLastGroup {
				if isLastEntry {
					prefix = "    └── "
				} else {
					prefix = "    ├── "
				}
			} else {
				if isLastEntry {
					prefix = "│   └── "
				} else {
					prefix = "│   ├── "
				}
			}

			fmt.Fprintf(f.out, "%s%s\n", prefix, f.entry.Sprint(entry.Name))
		}
	}
}

// PrintSummary prints the outcome of a generate run
func (f *Formatter) PrintSummary(mapping *domain.Mapping, results []SectionResult) {
	for _, r := range results {
		if r.Changed {
			f.success.Fprintf(f.out, "✓ Updated %s (%s)\n", r.Path, r.Name)
		} else {
			fmt.Fprintf(f.out, "  %s is up to date (%s)\n", r.Path, r.Name)
		}
	}
	f.success.Fprintf(f.out, "✓ Registered %d unit test(s) from %d group(s)\n", mapping.Count(), mapping.Len())
}

// PrintCheck prints the outcome of a check run and reports whether every
// section was up to date.
func (f *Formatter) PrintCheck(results []SectionResult) bool {
	upToDate := true
	for _, r := range results {
		if r.Changed {
			upToDate = false
			f.warning.Fprintf(f.out, "✗ %s is out of date (%s)\n", r.Path, r.Name)
		}
	}
	if upToDate {
		f.success.Fprintln(f.out, "✓ Generated sections are up to date")
	}
	return upToDate
}
