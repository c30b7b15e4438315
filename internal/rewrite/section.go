package rewrite

import (
	"fmt"
	"regexp"

	"utgen/internal/config"
	"utgen/internal/domain"
)

// Section describes one generated region: the file holding it, the marker
// pair bounding it and how each discovered entry is rendered inside it.
type Section struct {
	Name        string
	Path        string
	Start       *regexp.Regexp
	End         *regexp.Regexp
	Indent      string
	FormatEntry func(domain.Entry) string
}

// HeaderSection returns the declarations region of the headers file
func HeaderSection(cfg *config.Config) (Section, error) {
	start, end, err := compileMarkers(cfg.HeadersStartMarker, cfg.HeadersEndMarker)
	if err != nil {
		return Section{}, fmt.Errorf("headers section: %w", err)
	}
	return Section{
		Name:  "headers",
		Path:  cfg.GetHeadersPath(),
		Start: start,
		End:   end,
		FormatEntry: func(e domain.Entry) string {
			return e.Declaration
		},
	}, nil
}

// RunnerSection returns the RUN_TEST region of the runner file
func RunnerSection(cfg *config.Config) (Section, error) {
	start, end, err := compileMarkers(cfg.RunnerStartMarker, cfg.RunnerEndMarker)
	if err != nil {
		return Section{}, fmt.Errorf("runner section: %w", err)
	}
	template := cfg.RegistrationTemplate
	return Section{
		Name:   "runner",
		Path:   cfg.GetRunnerPath(),
		Start:  start,
		End:    end,
		Indent: "\t",
		FormatEntry: func(e domain.Entry) string {
			return e.Registration(template)
		},
	}, nil
}

func compileMarkers(startPattern, endPattern string) (*regexp.Regexp, *regexp.Regexp, error) {
	start, err := regexp.Compile(startPattern)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid start marker %q: %w", startPattern, err)
	}
	end, err := regexp.Compile(endPattern)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid end marker %q: %w", endPattern, err)
	}
	return start, end, nil
}
