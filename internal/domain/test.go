package domain

import "fmt"

// Entry represents a single test function declaration found in a source file
type Entry struct {
	Name        string // Bare function name, e.g. UT_HANDLE_Alloc
	Declaration string // Matched signature plus terminator, e.g. "void UT_HANDLE_Alloc(void);"
	SourceFile  string // Base name of the file the entry was found in
}

// Registration renders the runner call for the entry using a printf template
// with a single %s verb, e.g. "RUN_TEST(%s);".
func (e Entry) Registration(template string) string {
	return fmt.Sprintf(template, e.Name)
}

// Group is the ordered list of entries sharing a group key
type Group struct {
	Key     string
	Entries []Entry
}
