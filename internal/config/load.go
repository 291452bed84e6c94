package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/skiffhq/skiff/internal/errdefs"
)

// DefaultFileName is the config file looked up when no path is given.
const DefaultFileName = "skiff.yml"

// interpolationPattern matches ${VAR} references in the raw config text.
// Only the braced form is expanded; a bare $ passes through untouched.
var interpolationPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Load reads, interpolates and validates the configuration at path.
//
// The env_file overlay (when declared) is applied to the process environment
// first, then every ${VAR} reference in the file body is resolved from the
// environment. An unresolvable reference or a missing overlay file fails
// with a ConfigError.
func Load(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errdefs.ConfigError{Reason: fmt.Sprintf("failed to read config file %s", path), Err: err}
	}

	// A first, uninterpolated pass picks out env_file so the overlay is in
	// place before interpolation runs.
	var probe struct {
		EnvFile string `yaml:"env_file"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, &errdefs.ConfigError{Reason: "failed to parse yaml", Err: err}
	}
	if probe.EnvFile != "" {
		envPath := probe.EnvFile
		if !filepath.IsAbs(envPath) {
			envPath = filepath.Join(filepath.Dir(path), envPath)
		}
		if err := godotenv.Load(envPath); err != nil {
			return nil, &errdefs.ConfigError{Reason: fmt.Sprintf("failed to load env file %s", probe.EnvFile), Err: err}
		}
	}

	body, err := interpolate(string(data))
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(body), &cfg); err != nil {
		return nil, &errdefs.ConfigError{Reason: "failed to parse yaml", Err: err}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// interpolate resolves every ${VAR} reference from the process environment.
// All missing variables are collected so one failure reports them all.
func interpolate(body string) (string, error) {
	var missing []string
	expanded := interpolationPattern.ReplaceAllStringFunc(body, func(ref string) string {
		name := interpolationPattern.FindStringSubmatch(ref)[1]
		value, ok := os.LookupEnv(name)
		if !ok {
			missing = append(missing, name)
			return ref
		}
		return value
	})
	if len(missing) > 0 {
		return "", &errdefs.ConfigError{
			Reason: fmt.Sprintf("unresolved environment variable(s): %s", strings.Join(missing, ", ")),
		}
	}
	return expanded, nil
}
