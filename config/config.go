package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the shell configuration, loaded from an optional yaml file
// with environment overrides.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig locates the flat table files the scans read.
type DataConfig struct {
	Dir string `yaml:"dir" env:"LAVADB_DATA_DIR"`
}

type LoggingConfig struct {
	Level string `yaml:"level" env:"LAVADB_LOG_LEVEL"`
	// SeqURL enables shipping logs to a Seq server when set.
	SeqURL string `yaml:"seq_url" env:"LAVADB_SEQ_URL"`
}

func Default() *Config {
	return &Config{
		Data: DataConfig{
			Dir: "data",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the config file at path. A missing file is not an error: the
// defaults apply, then environment variables override either way.
func Load(path string) (*Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("LAVADB_DATA_DIR"); v != "" {
		cfg.Data.Dir = v
	}
	if v := os.Getenv("LAVADB_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LAVADB_SEQ_URL"); v != "" {
		cfg.Logging.SeqURL = v
	}
}
