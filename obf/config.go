// Copyright (c) 2025 The txtobf Authors
// released under the MIT license

package obf

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/txtobf/txtobf/obf/logger"
	"github.com/txtobf/txtobf/obf/tables"
)

// DefaultsConfig holds the policy used when a flag isn't given.
type DefaultsConfig struct {
	Table        string
	Gaps         bool
	NoisePercent int `yaml:"noise-percent"`
	Normalize    bool
}

// TableConfig defines a custom mapping table.
type TableConfig struct {
	Name        string
	Description string
	Entries     []tables.Entry
}

const (
	defaultTable      = "deterministic"
	defaultLedgerPath = "txtobf.db"
)

// LedgerConfig controls the record of past obfuscations. The ledger is on
// unless the config turns it off.
type LedgerConfig struct {
	EnabledSetting *bool `yaml:"enabled"`
	Enabled        bool  `yaml:"-"`
	Path           string
}

// Config defines the overall configuration.
type Config struct {
	Defaults DefaultsConfig

	Tables []TableConfig

	Ledger LedgerConfig

	Logging []logger.LoggingConfig

	Filename string `yaml:"-"`

	registry *tables.Registry
}

// DefaultConfig is used when no config file exists: the deterministic
// table, a ledger next to the working directory, and info logging to stderr.
func DefaultConfig() *Config {
	config := &Config{
		Defaults: DefaultsConfig{
			Table: defaultTable,
		},
		Ledger: LedgerConfig{
			Enabled: true,
			Path:    defaultLedgerPath,
		},
		Logging: []logger.LoggingConfig{
			{
				Method:      "stderr",
				LevelString: "info",
				TypeString:  "*",
			},
		},
	}
	// the defaults are known good
	if err := config.postProcess(); err != nil {
		panic(err)
	}
	return config
}

// LoadConfig loads the given YAML configuration file.
func LoadConfig(filename string) (config *Config, err error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	if config == nil {
		config = new(Config)
	}

	config.Filename = filename

	if config.Defaults.Table == "" {
		config.Defaults.Table = defaultTable
	}
	if config.Ledger.EnabledSetting == nil {
		config.Ledger.Enabled = true
		if config.Ledger.Path == "" {
			config.Ledger.Path = defaultLedgerPath
		}
	} else {
		config.Ledger.Enabled = *config.Ledger.EnabledSetting
		if config.Ledger.Enabled && config.Ledger.Path == "" {
			return nil, ErrLedgerPathMissing
		}
	}
	if len(config.Logging) == 0 {
		config.Logging = DefaultConfig().Logging
	}

	if err = config.postProcess(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfigOrDefault is LoadConfig, except that a missing file yields
// DefaultConfig.
func LoadConfigOrDefault(filename string) (*Config, error) {
	config, err := LoadConfig(filename)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return config, err
}

func (config *Config) postProcess() (err error) {
	if config.Defaults.NoisePercent < 0 || config.Defaults.NoisePercent > 100 {
		return fmt.Errorf("%w: %d", ErrNoisePercentOutOfRange, config.Defaults.NoisePercent)
	}

	var newLogConfigs []logger.LoggingConfig
	for _, logConfig := range config.Logging {
		// methods
		methods := make(map[string]bool)
		for _, method := range strings.Split(logConfig.Method, " ") {
			if len(method) > 0 {
				methods[strings.ToLower(method)] = true
			}
		}
		if methods["file"] && logConfig.Filename == "" {
			return ErrLoggerFilenameMissing
		}
		logConfig.MethodFile = methods["file"]
		logConfig.MethodStdout = methods["stdout"]
		logConfig.MethodStderr = methods["stderr"]

		// levels
		level, exists := logger.LogLevelNames[strings.ToLower(logConfig.LevelString)]
		if !exists {
			return fmt.Errorf("Could not translate log level [%s]", logConfig.LevelString)
		}
		logConfig.Level = level

		// types
		logConfig.Types = nil
		logConfig.ExcludedTypes = nil
		for _, typeStr := range strings.Split(logConfig.TypeString, " ") {
			if len(typeStr) == 0 {
				continue
			}
			if typeStr == "-" {
				return ErrLoggerExcludeEmpty
			}
			if typeStr[0] == '-' {
				typeStr = typeStr[1:]
				logConfig.ExcludedTypes = append(logConfig.ExcludedTypes, typeStr)
			} else {
				logConfig.Types = append(logConfig.Types, typeStr)
			}
		}
		if len(logConfig.Types) < 1 {
			return ErrLoggerHasNoTypes
		}

		newLogConfigs = append(newLogConfigs, logConfig)
	}
	config.Logging = newLogConfigs

	// custom tables are compiled (and strictly checked) now, so a bad table
	// fails at startup rather than halfway through a run
	registry := tables.DefaultRegistry()
	for _, tableConfig := range config.Tables {
		if len(tableConfig.Entries) == 0 {
			return fmt.Errorf("%w: %s", ErrTableEntriesMissing, tableConfig.Name)
		}
		if _, err = registry.Register(tableConfig.Name, tableConfig.Description, tableConfig.Entries); err != nil {
			return err
		}
	}
	if _, err = registry.Resolve(config.Defaults.Table); err != nil {
		return fmt.Errorf("Could not resolve default table: %w", err)
	}
	config.registry = registry
	return nil
}

// Registry returns the built-in tables plus the custom tables defined in
// the config.
func (config *Config) Registry() *tables.Registry {
	return config.registry
}

// Policy builds the default policy for the given table reference, falling
// back to the configured default table when ref is empty.
func (config *Config) Policy(ref string) (policy Policy, err error) {
	if ref == "" {
		ref = config.Defaults.Table
	}
	table, err := config.registry.Resolve(ref)
	if err != nil {
		return
	}
	policy = Policy{
		Table:        table.ID(),
		Gaps:         config.Defaults.Gaps,
		NoisePercent: config.Defaults.NoisePercent,
		Normalize:    config.Defaults.Normalize,
	}
	return
}
