package config

import (
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"zrep/internal/errors"
)

// ResolveReporterEntry finds the reporter entry whose name contains fragment
// and decodes its settings object into a RunConfig. Keys that are not
// recognized end up in RunConfig.Options unchanged.
func ResolveReporterEntry(entries [][]any, fragment string) (RunConfig, error) {
	if fragment == "" {
		fragment = DefaultReporterFragment
	}

	for _, entry := range entries {
		if !entryMatches(entry, fragment) {
			continue
		}
		return DecodeSettings(settingsOf(entry))
	}

	return RunConfig{}, errors.Wrap(errors.ErrReporterNotConfigured, MissingSettingsMessage)
}

// DecodeSettings decodes a settings object into a RunConfig.
func DecodeSettings(settings map[string]any) (RunConfig, error) {
	var rc RunConfig
	if settings == nil {
		return rc, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &rc,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return rc, errors.Wrap(err, "create settings decoder")
	}
	if err := decoder.Decode(settings); err != nil {
		return rc, errors.Wrap(errors.ErrConfigInvalid, err.Error())
	}
	return rc, nil
}

func entryMatches(entry []any, fragment string) bool {
	for _, el := range entry {
		if name, ok := el.(string); ok && strings.Contains(name, fragment) {
			return true
		}
	}
	return false
}

func settingsOf(entry []any) map[string]any {
	for _, el := range entry {
		switch m := el.(type) {
		case map[string]any:
			return m
		case map[any]any:
			out := make(map[string]any, len(m))
			for k, v := range m {
				if ks, ok := k.(string); ok {
					out[ks] = v
				}
			}
			return out
		}
	}
	return nil
}
