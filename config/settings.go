package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/c360/modkit/errors"
)

// EnvSimplifiedErrors overrides Settings.SimplifiedErrors when set to a
// value strconv.ParseBool accepts.
const EnvSimplifiedErrors = "MODKIT_SIMPLIFIED_ERRORS"

// Settings holds process-wide configuration for the composition core
type Settings struct {
	// SimplifiedErrors enables simplified error reporting: validation
	// errors surface without their originating cause chain
	SimplifiedErrors bool `yaml:"simplified_errors"`
}

// Load reads settings from a YAML file
func Load(path string) (Settings, error) {
	var s Settings

	data, err := os.ReadFile(path)
	if err != nil {
		return s, errors.Wrap(err, "Settings", "Load", "file read")
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, errors.Wrap(err, "Settings", "Load", "YAML parsing")
	}
	return s, nil
}

// FromEnv returns a copy of s with environment overrides applied.
// Unset or unparseable variables leave the file-loaded value in place.
func (s Settings) FromEnv() Settings {
	if raw, ok := os.LookupEnv(EnvSimplifiedErrors); ok {
		if v, err := strconv.ParseBool(raw); err == nil {
			s.SimplifiedErrors = v
		}
	}
	return s
}

// Policy converts the settings into an injectable error-reporting policy
func (s Settings) Policy() errors.Policy {
	return errors.Policy{Simplified: s.SimplifiedErrors}
}
