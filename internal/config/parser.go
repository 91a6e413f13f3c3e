package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	pverrors "github.com/alexisbeaulieu97/pview/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk on top of Defaults,
// validates it, and returns the result. Unknown keys are rejected.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pverrors.NewParseError(path, 0, err)
	}

	cfg := Defaults()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, pverrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DefaultPath returns the per-user configuration file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "pview", "config.yaml"), nil
}

// Load resolves the configuration: an explicit path must exist; otherwise the
// per-user file is used when present, else the defaults. The returned string
// is the file that was read, empty for defaults.
func Load(path string) (*Config, string, error) {
	if path != "" {
		cfg, err := ParseConfig(path)
		return cfg, path, err
	}

	def, err := DefaultPath()
	if err == nil {
		if _, statErr := os.Stat(def); statErr == nil {
			cfg, err := ParseConfig(def)
			return cfg, def, err
		}
	}

	cfg := Defaults()
	return &cfg, "", nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
