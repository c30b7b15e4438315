package discovery

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"utgen/internal/domain"
)

// maxLineSize bounds a single source line
const maxLineSize = 1024 * 1024

// Parser extracts test function declarations from unit test sources
type Parser struct {
	function *regexp.Regexp
}

// NewParser creates a Parser matching trimmed lines against function
func NewParser(function *regexp.Regexp) *Parser {
	return &Parser{function: function}
}

// FindTestCases returns the test functions declared in filePath, in the
// order they appear in the file. Lines that do not match are skipped.
func (p *Parser) FindTestCases(filePath string) ([]domain.Entry, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}
	defer file.Close()

	sourceFile := filepath.Base(filePath)

	var testCases []domain.Entry
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		entry, ok := p.ParseLine(scanner.Text())
		if !ok {
			continue
		}
		entry.SourceFile = sourceFile
		testCases = append(testCases, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	return testCases, nil
}

// ParseLine turns a signature line such as "void UT_Example(void)" into an
// entry. The bare name is the second whitespace separated token cut at its
// first parenthesis.
func (p *Parser) ParseLine(line string) (domain.Entry, bool) {
	line = strings.TrimSpace(line)
	if !p.function.MatchString(line) {
		return domain.Entry{}, false
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return domain.Entry{}, false
	}
	name, _, _ := strings.Cut(fields[1], "(")
	if name == "" {
		return domain.Entry{}, false
	}

	return domain.Entry{
		Name:        name,
		Declaration: line + ";",
	}, true
}

// GroupKey derives the group key of a source file: its base name up to the
// first dot, uppercased. "ut_math.c" becomes "UT_MATH".
func GroupKey(fileName string) string {
	base, _, _ := strings.Cut(filepath.Base(fileName), ".")
	return strings.ToUpper(base)
}
