package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "insightcli/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Charts  ChartsConfig  `yaml:"charts" envconfig:"CHARTS"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/insight.log"`
}

// PathsConfig contains the conventional directory layout shared by all
// case-study tools. Relative paths resolve against the working directory.
type PathsConfig struct {
	RawDir            string `yaml:"raw_dir" envconfig:"RAW_DIR" default:"data/raw" validate:"required"`
	ProcessedDir      string `yaml:"processed_dir" envconfig:"PROCESSED_DIR" default:"data/processed" validate:"required"`
	VisualizationsDir string `yaml:"visualizations_dir" envconfig:"VISUALIZATIONS_DIR" default:"reports/visualizations" validate:"required"`
	LogsDir           string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs" validate:"required"`
}

// ChartsConfig controls chart rendering output
type ChartsConfig struct {
	WidthInches  float64 `yaml:"width_inches" envconfig:"WIDTH_INCHES" default:"8" validate:"gt=0"`
	HeightInches float64 `yaml:"height_inches" envconfig:"HEIGHT_INCHES" default:"6" validate:"gt=0"`
}

// Load loads configuration in three layers: struct-tag defaults,
// INSIGHT_* environment variables on top of them, and finally an
// optional YAML config file on top of both. envconfig must run first
// because it writes its defaults into every field the environment
// leaves unset; the file is overlaid afterwards so explicitly
// configured values are never clobbered by those defaults. Validation
// runs on the merged result.
func Load(configFile string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("INSIGHT", &cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			fileCfg, err := loadFromFile(configFile)
			if err != nil {
				return nil, apperrors.NewConfigError("failed to load config file", err)
			}
			overlay(&cfg, fileCfg)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, apperrors.NewConfigError("config validation failed", err)
	}

	return &cfg, nil
}

// overlay copies every field the file explicitly set onto the
// env/default configuration. Zero values mean "not set in the file".
func overlay(dst, file *Config) {
	if file.Logging.Level != "" {
		dst.Logging.Level = file.Logging.Level
	}
	if file.Logging.Format != "" {
		dst.Logging.Format = file.Logging.Format
	}
	if file.Logging.Output != "" {
		dst.Logging.Output = file.Logging.Output
	}
	if file.Logging.FilePath != "" {
		dst.Logging.FilePath = file.Logging.FilePath
	}
	if file.Paths.RawDir != "" {
		dst.Paths.RawDir = file.Paths.RawDir
	}
	if file.Paths.ProcessedDir != "" {
		dst.Paths.ProcessedDir = file.Paths.ProcessedDir
	}
	if file.Paths.VisualizationsDir != "" {
		dst.Paths.VisualizationsDir = file.Paths.VisualizationsDir
	}
	if file.Paths.LogsDir != "" {
		dst.Paths.LogsDir = file.Paths.LogsDir
	}
	if file.Charts.WidthInches != 0 {
		dst.Charts.WidthInches = file.Charts.WidthInches
	}
	if file.Charts.HeightInches != 0 {
		dst.Charts.HeightInches = file.Charts.HeightInches
	}
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// Defaults always validate; a failure here means the struct tags
		// themselves are broken.
		panic(err)
	}
	return cfg
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate checks the configuration using struct tags
func (c *Config) validate() error {
	return validator.New().Struct(c)
}
