// Package core provides configuration and spelling-table construction for combokey.
//
// The core package sits between the pure chord functions in pkg/combo and the CLI.
// It handles:
//
//   - Configuration loading and validation (from YAML files)
//   - Building a combo.Normalizer from configured alias tables and priority order
//   - Expanding named bindings into every literal spelling (the spelling table)
//   - Lint checks such as misspelled modifier names
//
// # Configuration
//
// Configuration is loaded from a YAML file with the following sections:
//
//   - delimiter: chord component separator (default "-")
//   - aliases: extra spellings per logical key, merged into the built-in table
//   - priority: ordering of logical keys in canonical chords
//   - bindings: named chords to pre-compute spellings for
//   - logging: log configuration
//
// # Example Configuration
//
//	delimiter: "-"
//	aliases:
//	  os: ["super", "meta"]
//	priority: [ctrl, shift, alt, os]
//	bindings:
//	  - name: save
//	    chord: ctrl-s
//	  - name: palette
//	    groups: [["ctrl", "control"], ["shift"], ["p"]]
//	logging:
//	  level: info
package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/keepmind9/combokey/pkg/combo"
	"github.com/keepmind9/combokey/pkg/constants"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

// LoadConfig loads configuration from file and expands environment variables.
// An empty path yields DefaultConfig.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig parses YAML configuration, applies defaults and validates it
func ParseConfig(data []byte) (*Config, error) {
	expandedData, err := expandEnv(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to expand environment variables: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// FindConfig returns the first existing config file among the default locations
func FindConfig() string {
	for _, loc := range DefaultConfigLocations() {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}
	return ""
}

// DefaultConfigLocations lists where FindConfig looks, in order
func DefaultConfigLocations() []string {
	locations := []string{constants.DefaultConfigName}
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(home, constants.UserConfigDir, "config.yaml"))
	}
	return append(locations, filepath.Join(constants.SystemConfigDir, "config.yaml"))
}

// expandEnv replaces ${VAR_NAME} patterns with environment variable values
func expandEnv(input string) (string, error) {
	var missingVars []string

	result := os.Expand(input, func(key string) string {
		if val, ok := os.LookupEnv(key); ok {
			return val
		}
		missingVars = append(missingVars, key)
		return ""
	})

	if len(missingVars) > 0 {
		return "", fmt.Errorf("missing required environment variables: %s",
			strings.Join(missingVars, ", "))
	}

	return result, nil
}

func applyDefaults(config *Config) {
	if config.Delimiter == "" {
		config.Delimiter = combo.DefaultDelimiter
	}
	aliases := combo.AliasTable(config.Aliases).Lower()
	if !config.ReplaceAliases {
		aliases = combo.DefaultAliases().Merge(aliases)
	}
	config.Aliases = aliases
	if len(config.Priority) == 0 {
		config.Priority = combo.DefaultPriority()
	}

	if config.Logging.Level == "" {
		config.Logging.Level = constants.DefaultLogLevel
	}
	if config.Logging.MaxSize == 0 {
		config.Logging.MaxSize = constants.DefaultLogMaxSize
	}
	if config.Logging.MaxBackups == 0 {
		config.Logging.MaxBackups = constants.DefaultLogMaxBackups
	}
	if config.Logging.MaxAge == 0 {
		config.Logging.MaxAge = constants.DefaultLogMaxAge
	}
}

// validateConfig checks struct tags first, then the semantic rules tags cannot express
func validateConfig(config *Config) error {
	if err := validate.Struct(config); err != nil {
		return formatValidationError(err)
	}

	if _, err := config.Normalizer(); err != nil {
		return err
	}

	seen := make(map[string]bool, len(config.Bindings))
	for i, b := range config.Bindings {
		if seen[b.Name] {
			return fmt.Errorf("binding '%s' is defined more than once", b.Name)
		}
		seen[b.Name] = true

		hasChord := strings.TrimSpace(b.Chord) != ""
		hasGroups := len(b.Groups) > 0
		if hasChord == hasGroups {
			return fmt.Errorf("binding '%s' (index %d) must set exactly one of chord or groups", b.Name, i)
		}
		for j, g := range b.Groups {
			if len(g) == 0 {
				return fmt.Errorf("binding '%s' group %d: %w", b.Name, j, combo.ErrInvalidInput)
			}
		}
	}

	return nil
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed '%s=%s'", fe.Namespace(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: failed '%s'", fe.Namespace(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

// Normalizer builds the chord normalizer described by the configuration
func (c *Config) Normalizer() (*combo.Normalizer, error) {
	return combo.NewNormalizer(combo.AliasTable(c.Aliases), combo.PriorityOrder(c.Priority),
		combo.WithDelimiter(c.Delimiter))
}

// GetBinding retrieves a binding by name
func (c *Config) GetBinding(name string) (BindingConfig, error) {
	for _, b := range c.Bindings {
		if b.Name == name {
			return b, nil
		}
	}
	return BindingConfig{}, fmt.Errorf("binding %s not found in configuration", name)
}
