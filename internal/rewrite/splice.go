package rewrite

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"utgen/internal/domain"
)

var (
	// ErrMarkerNotFound is returned when a marker line is missing
	ErrMarkerNotFound = errors.New("marker not found")
	// ErrMarkerDuplicate is returned when a marker matches more than one line
	ErrMarkerDuplicate = errors.New("marker matches more than one line")
	// ErrMarkerOrder is returned when the end marker does not follow the start marker
	ErrMarkerOrder = errors.New("end marker must come after start marker")
)

// LocateMarkers returns the indexes of the start and end marker lines.
// Each marker must match exactly one line. A line matching the start
// pattern is never considered as an end marker.
func LocateMarkers(lines []string, start, end *regexp.Regexp) (int, int, error) {
	var starts, ends []int
	for i, line := range lines {
		line = strings.TrimRight(line, "\r\n")
		if start.MatchString(line) {
			starts = append(starts, i)
		} else if end.MatchString(line) {
			ends = append(ends, i)
		}
	}

	if err := checkMarker("start", start, starts); err != nil {
		return -1, -1, err
	}
	if err := checkMarker("end", end, ends); err != nil {
		return -1, -1, err
	}

	s, e := starts[0], ends[0]
	if e <= s {
		return -1, -1, fmt.Errorf("%w: start on line %d, end on line %d", ErrMarkerOrder, s+1, e+1)
	}
	return s, e, nil
}

func checkMarker(kind string, pattern *regexp.Regexp, found []int) error {
	switch len(found) {
	case 0:
		return fmt.Errorf("%w: %s marker %q", ErrMarkerNotFound, kind, pattern)
	case 1:
		return nil
	default:
		lineNumbers := make([]string, len(found))
		for i, idx := range found {
			lineNumbers[i] = fmt.Sprint(idx + 1)
		}
		return fmt.Errorf("%w: %s marker %q on lines %s", ErrMarkerDuplicate, kind, pattern, strings.Join(lineNumbers, ", "))
	}
}

// Block renders the generated region: for every group a blank line, a
// comment naming the group and one line per entry, followed by a single
// trailing blank line. Every line ends with newline.
func Block(mapping *domain.Mapping, indent, newline string, format func(domain.Entry) string) []string {
	var lines []string
	for _, group := range mapping.Groups() {
		lines = append(lines, newline, indent+"/* "+group.Key+" */"+newline)
		for _, entry := range group.Entries {
			lines = append(lines, indent+format(entry)+newline)
		}
	}
	return append(lines, newline)
}

// Splice replaces everything strictly between the section markers in
// content with the block generated from mapping.
func Splice(content string, section Section, mapping *domain.Mapping) (string, error) {
	lines := splitLines(content)
	s, e, err := LocateMarkers(lines, section.Start, section.End)
	if err != nil {
		return "", err
	}
	return splice(lines, s, e, section, mapping), nil
}

func splice(lines []string, s, e int, section Section, mapping *domain.Mapping) string {
	newline := "\n"
	if strings.HasSuffix(lines[s], "\r\n") {
		newline = "\r\n"
	}
	block := Block(mapping, section.Indent, newline, section.FormatEntry)

	var b strings.Builder
	for _, line := range lines[:s+1] {
		b.WriteString(line)
	}
	for _, line := range block {
		b.WriteString(line)
	}
	for _, line := range lines[e:] {
		b.WriteString(line)
	}
	return b.String()
}

// splitLines splits content keeping each line's terminator, so joining the
// result gives back content unchanged.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
