package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"zrep/internal/errors"
)

// fileSettings is the case-preserving view of the config file. Viper folds
// keys to lower case, which would mangle passthrough options.
type fileSettings struct {
	Zephyr   map[string]any `yaml:"zephyr"`
	Reporter [][]any        `yaml:"reporter"`
}

// Load creates a config from defaults, the dotenv file, the config file,
// ZEPHYR_* environment variables and flags, lowest precedence first.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	cfg.Flags = flags

	if flags.ConfigFile != "" {
		cfg.ConfigFile = flags.ConfigFile
	}
	if flags.EnvFile != "" {
		cfg.EnvFile = flags.EnvFile
	}

	// A missing default .env is fine, an explicit one must exist.
	if err := godotenv.Load(cfg.EnvFile); err != nil && flags.EnvFile != "" {
		return nil, errors.Wrapf(err, "load env file %s", cfg.EnvFile)
	}

	v := newViperInstance()
	if _, err := os.Stat(cfg.ConfigFile); err == nil {
		v.SetConfigFile(cfg.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", cfg.ConfigFile)
		}
		if err := cfg.readSettings(cfg.ConfigFile); err != nil {
			return nil, err
		}
	} else if flags.ConfigFile != "" {
		return nil, errors.Wrapf(err, "config file %s", cfg.ConfigFile)
	}

	cfg.Format = v.GetString("format")
	cfg.Workers = v.GetInt("workers")
	cfg.ReporterFragment = v.GetString("reporter_fragment")
	cfg.PathsToIgnore = v.GetStringSlice("paths_to_ignore")
	cfg.env = RunConfig{
		Host:               v.GetString("host"),
		ProjectKey:         v.GetString("project_key"),
		User:               v.GetString("user"),
		Password:           v.GetString("password"),
		AuthorizationToken: v.GetString("authorization_token"),
	}

	// Apply flag overrides
	if flags.Format != "" {
		cfg.Format = flags.Format
	}
	if flags.Workers > 0 {
		cfg.Workers = flags.Workers
	}

	return cfg, nil
}

func newViperInstance() *viper.Viper {
	v := viper.New()
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("workers", DefaultWorkers)
	v.SetDefault("reporter_fragment", DefaultReporterFragment)
	v.SetDefault("paths_to_ignore", strings.Split(DefaultPathsToIgnore, ","))
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"host", "project_key", "user", "password", "authorization_token"} {
		_ = v.BindEnv(key)
	}
	return v
}

func (c *Config) readSettings(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config file %s", path)
	}

	var fs fileSettings
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return errors.Wrapf(err, "parse config file %s", path)
	}
	c.settings = fs.Zephyr
	c.reporters = fs.Reporter
	return nil
}
