package config

import (
	"strings"

	"zrep/internal/errors"
)

// Config holds all configuration for the application
type Config struct {
	// File locations
	ConfigFile string
	EnvFile    string

	// Report settings
	Format           string
	Workers          int
	ReporterFragment string
	PathsToIgnore    []string

	// Zephyr settings read from the config file. Only one of them is set.
	settings  map[string]any
	reporters [][]any

	// Zephyr settings read from the environment
	env RunConfig

	// Command flags
	Flags Flags
}

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

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ConfigFile:       DefaultConfigFile,
		EnvFile:          DefaultEnvFile,
		Format:           DefaultFormat,
		Workers:          DefaultWorkers,
		ReporterFragment: DefaultReporterFragment,
		PathsToIgnore:    strings.Split(DefaultPathsToIgnore, ","),
	}
}

// ResolveRunConfig builds the RunConfig for a run. Settings come from the
// config file's zephyr block, or from the first matching entry of a reporter
// list (the config file's, then the one embedded in the report). Environment
// variables override individual fields.
func (c *Config) ResolveRunConfig(reportEntries [][]any) (RunConfig, error) {
	var rc RunConfig
	var err error

	switch {
	case c.settings != nil:
		rc, err = DecodeSettings(c.settings)
	case len(c.reporters) > 0:
		rc, err = ResolveReporterEntry(c.reporters, c.ReporterFragment)
	case len(reportEntries) > 0:
		rc, err = ResolveReporterEntry(reportEntries, c.ReporterFragment)
	}
	if err != nil && !(errors.Is(err, errors.ErrReporterNotConfigured) && !c.env.IsZero()) {
		return RunConfig{}, err
	}

	rc = rc.withOverrides(c.env)
	if rc.IsZero() {
		return RunConfig{}, errors.Wrap(errors.ErrReporterNotConfigured, MissingSettingsMessage)
	}
	if err := rc.Validate(); err != nil {
		return RunConfig{}, err
	}
	return rc, nil
}

func (rc RunConfig) withOverrides(o RunConfig) RunConfig {
	if o.Host != "" {
		rc.Host = o.Host
	}
	if o.ProjectKey != "" {
		rc.ProjectKey = o.ProjectKey
	}
	if o.User != "" {
		rc.User = o.User
	}
	if o.Password != "" {
		rc.Password = o.Password
	}
	if o.AuthorizationToken != "" {
		rc.AuthorizationToken = o.AuthorizationToken
	}
	return rc
}
