package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// DefaultConfigFile is read when no -config flag is given.
const DefaultConfigFile = "gradecli.yaml"

// Config represents the complete tool configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   Paths         `yaml:"paths" envconfig:"PATHS"`
	Course  CourseConfig  `yaml:"course"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"omitempty,oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"omitempty,oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"omitempty,oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/gradecli.log"`
}

var validate = validator.New()

// Load loads configuration from the given YAML file merged with GRADE_*
// environment variables; the environment wins. An empty path falls back to
// gradecli.yaml in the working directory, which may be absent.
func Load(configFile string) (*Config, error) {
	var cfg Config

	explicit := configFile != ""
	if configFile == "" {
		configFile = DefaultConfigFile
	}

	data, err := os.ReadFile(configFile)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	case os.IsNotExist(err) && !explicit:
		// Default file is optional; run on env vars and defaults alone.
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	if err := envconfig.Process("GRADE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills unset fields with the standard values.
func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	if c.Logging.Output == "" {
		c.Logging.Output = DefaultLogOutput
	}
	c.Paths = c.Paths.withDefaults()
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = c.Paths.GetLogPath("gradecli.log")
	}
	c.Course.normalize()
}

// Validate checks the configuration shape. Course content beyond shape
// (threshold ordering, scheme arity) is validated where it is consumed, so
// one run can surface several findings.
func (c *Config) Validate() error {
	if err := validate.Struct(c.Logging); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	// The course section is optional for tools that only post-process an
	// existing report, so validate it only when sources are declared.
	if len(c.Course.Gradebooks) > 0 || len(c.Course.Assignments) > 0 {
		if err := validate.Struct(c.Course); err != nil {
			return fmt.Errorf("course: %w", err)
		}
		for i, src := range c.Course.Gradebooks {
			if src.FileType == "" && src.Columns.IsZero() {
				return fmt.Errorf("course: gradebook %d (%s): needs a file_type preset or an explicit column mapping", i, src.Path)
			}
		}
	}
	return nil
}
