package cli

import "zrep/internal/config"

// Flags holds command-line flags
type Flags struct {
	ConfigFile string
	EnvFile    string
	Format     string
	Input      string
	Filter     string
	Out        string
	Workers    int
	Verbose    bool
	Quiet      bool
	LogFile    string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ConfigFile: f.ConfigFile,
		EnvFile:    f.EnvFile,
		Format:     f.Format,
		Input:      f.Input,
		Filter:     f.Filter,
		Out:        f.Out,
		Workers:    f.Workers,
		Verbose:    f.Verbose,
		Quiet:      f.Quiet,
		LogFile:    f.LogFile,
	}
}
