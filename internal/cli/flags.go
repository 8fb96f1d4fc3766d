package cli

import "testkit/internal/config"

// Flags holds command-line flags
type Flags struct {
	Directory     string
	ConfigFile    string
	NoOpen        bool
	StrictColumns bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Directory:     f.Directory,
		ConfigFile:    f.ConfigFile,
		NoOpen:        f.NoOpen,
		StrictColumns: f.StrictColumns,
	}
}
