package cli

import "utgen/internal/config"

// Flags holds command-line flags
type Flags struct {
	Debug bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Debug: f.Debug,
	}
}
