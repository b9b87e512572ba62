package config

import (
	"zrep/internal/errors"
)

// RunConfig holds the connection settings of one reporting run.
// It is resolved once and read-only afterwards.
type RunConfig struct {
	Host               string `mapstructure:"host"`
	ProjectKey         string `mapstructure:"projectKey"`
	User               string `mapstructure:"user"`
	Password           string `mapstructure:"password"`
	AuthorizationToken string `mapstructure:"authorizationToken"`

	// Options are forwarded to the submission unexamined.
	Options map[string]any `mapstructure:",remain"`
}

// HasBasicAuth reports whether the user/password credential form is used.
func (rc RunConfig) HasBasicAuth() bool {
	return rc.User != "" || rc.Password != ""
}

// HasToken reports whether the authorization token credential form is used.
func (rc RunConfig) HasToken() bool {
	return rc.AuthorizationToken != ""
}

// IsZero reports whether no recognized setting is present.
func (rc RunConfig) IsZero() bool {
	return rc.Host == "" && rc.ProjectKey == "" && !rc.HasBasicAuth() && !rc.HasToken()
}

// Validate checks that host and project key are set and that exactly one
// credential form is present.
func (rc RunConfig) Validate() error {
	if rc.Host == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "host is required")
	}
	if rc.ProjectKey == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "projectKey is required")
	}

	basic, token := rc.HasBasicAuth(), rc.HasToken()
	switch {
	case basic && token:
		return errors.Wrap(errors.ErrConfigInvalid, "use either user and password or authorizationToken, not both")
	case token:
		return nil
	case !basic:
		return errors.Wrap(errors.ErrConfigInvalid, "user and password or authorizationToken is required")
	case rc.User == "" || rc.Password == "":
		return errors.Wrap(errors.ErrConfigInvalid, "both user and password are required")
	}
	return nil
}
