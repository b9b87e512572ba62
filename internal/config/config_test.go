package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zrep/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	assert.Equal(t, DefaultConfigFile, cfg.ConfigFile)
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.Equal(t, DefaultReporterFragment, cfg.ReporterFragment)
	assert.Equal(t, []string{"node_modules", "vendor", "playwright-report"}, cfg.PathsToIgnore)
}

func TestRunConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  RunConfig
		wantErr bool
	}{
		{
			name:   "basic auth",
			config: RunConfig{Host: "https://jira.example.com", ProjectKey: "QA", User: "bot", Password: "secret"},
		},
		{
			name:   "token auth",
			config: RunConfig{Host: "https://jira.example.com", ProjectKey: "QA", AuthorizationToken: "tok"},
		},
		{
			name:    "missing host",
			config:  RunConfig{ProjectKey: "QA", AuthorizationToken: "tok"},
			wantErr: true,
		},
		{
			name:    "missing project key",
			config:  RunConfig{Host: "https://jira.example.com", AuthorizationToken: "tok"},
			wantErr: true,
		},
		{
			name:    "no credentials",
			config:  RunConfig{Host: "https://jira.example.com", ProjectKey: "QA"},
			wantErr: true,
		},
		{
			name:    "both credential forms",
			config:  RunConfig{Host: "https://jira.example.com", ProjectKey: "QA", User: "bot", Password: "secret", AuthorizationToken: "tok"},
			wantErr: true,
		},
		{
			name:    "user without password",
			config:  RunConfig{Host: "https://jira.example.com", ProjectKey: "QA", User: "bot"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, errors.ErrConfigInvalid)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLoad_ZephyrBlock(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zrep.yaml")
	content := `format: gotest
workers: 2
zephyr:
  host: https://jira.example.com
  projectKey: QA
  authorizationToken: tok
  testCycleFolder: Nightly
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(Flags{ConfigFile: path, EnvFile: writeEnv(t, dir, "")})
	require.NoError(t, err)
	assert.Equal(t, "gotest", cfg.Format)
	assert.Equal(t, 2, cfg.Workers)

	rc, err := cfg.ResolveRunConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "QA", rc.ProjectKey)
	assert.Equal(t, "tok", rc.AuthorizationToken)
	assert.Equal(t, map[string]any{"testCycleFolder": "Nightly"}, rc.Options)
}

func TestLoad_ReporterList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zrep.yaml")
	content := `reporter:
  - [list]
  - - ./node_modules/playwright-zephyr/lib/src/index.js
    - host: https://jira.example.com
      projectKey: ABC
      user: bot
      password: secret
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(Flags{ConfigFile: path, EnvFile: writeEnv(t, dir, "")})
	require.NoError(t, err)

	rc, err := cfg.ResolveRunConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "ABC", rc.ProjectKey)
	assert.Equal(t, "bot", rc.User)
	assert.Empty(t, rc.Options)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	env := writeEnv(t, dir, "ZEPHYR_HOST=https://env.example.com\nZEPHYR_PROJECT_KEY=ENV\nZEPHYR_AUTHORIZATION_TOKEN=tok\n")
	for _, key := range []string{"ZEPHYR_HOST", "ZEPHYR_PROJECT_KEY", "ZEPHYR_AUTHORIZATION_TOKEN"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load(Flags{ConfigFile: filepath.Join(dir, "missing.yaml"), EnvFile: env})
	require.Error(t, err, "explicit config file must exist")
	assert.Nil(t, cfg)

	cfg, err = Load(Flags{EnvFile: env})
	require.NoError(t, err)

	rc, err := cfg.ResolveRunConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", rc.Host)
	assert.Equal(t, "ENV", rc.ProjectKey)
}

func TestLoad_FlagOverrides(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(Flags{EnvFile: writeEnv(t, dir, ""), Format: "junit", Workers: 8})
	require.NoError(t, err)
	assert.Equal(t, "junit", cfg.Format)
	assert.Equal(t, 8, cfg.Workers)
}

func TestConfig_ResolveRunConfig(t *testing.T) {
	reportEntries := [][]any{
		{"json", map[string]any{"outputFile": "report.json"}},
		{"/repo/node_modules/playwright-zephyr/index.js", map[string]any{
			"host":               "https://jira.example.com",
			"projectKey":         "PW",
			"authorizationToken": "tok",
		}},
	}

	t.Run("falls back to report entries", func(t *testing.T) {
		cfg := New()
		rc, err := cfg.ResolveRunConfig(reportEntries)
		require.NoError(t, err)
		assert.Equal(t, "PW", rc.ProjectKey)
	})

	t.Run("environment overrides fields", func(t *testing.T) {
		cfg := New()
		cfg.env = RunConfig{ProjectKey: "OVR"}
		rc, err := cfg.ResolveRunConfig(reportEntries)
		require.NoError(t, err)
		assert.Equal(t, "OVR", rc.ProjectKey)
		assert.Equal(t, "https://jira.example.com", rc.Host)
	})

	t.Run("nothing configured", func(t *testing.T) {
		cfg := New()
		_, err := cfg.ResolveRunConfig(nil)
		require.ErrorIs(t, err, errors.ErrReporterNotConfigured)
		assert.ErrorContains(t, err, MissingSettingsMessage)
	})

	t.Run("no matching entry", func(t *testing.T) {
		cfg := New()
		_, err := cfg.ResolveRunConfig(reportEntries[:1])
		require.ErrorIs(t, err, errors.ErrReporterNotConfigured)
	})

	t.Run("no matching entry but environment is complete", func(t *testing.T) {
		cfg := New()
		cfg.env = RunConfig{Host: "https://h", ProjectKey: "E", AuthorizationToken: "t"}
		rc, err := cfg.ResolveRunConfig(reportEntries[:1])
		require.NoError(t, err)
		assert.Equal(t, "E", rc.ProjectKey)
	})
}

func writeEnv(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
