package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file at the project root.
const FileName = "life.yaml"

// Config represents the top-level life.yaml configuration.
type Config struct {
	Owner  OwnerConfig  `yaml:"owner"`
	Ledger LedgerConfig `yaml:"ledger"`
	Git    GitConfig    `yaml:"git"`
}

// OwnerConfig identifies whose life is on the books.
type OwnerConfig struct {
	Name string `yaml:"name"`
	Age  int    `yaml:"age"` // age at valuation time
}

// LedgerConfig locates the ledger CSV, relative to the project root.
type LedgerConfig struct {
	File string `yaml:"file"`
}

// GitConfig controls ledger snapshots.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Env holds LIFEWBS_* environment overrides.
type Env struct {
	Ledger  string `envconfig:"LEDGER"`
	NoColor bool   `envconfig:"NO_COLOR"`
}

// LoadEnv reads LIFEWBS_* overrides from the environment.
func LoadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process("lifewbs", &env); err != nil {
		return Env{}, fmt.Errorf("reading environment: %w", err)
	}
	return env, nil
}

// Load reads a life.yaml file and applies environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	env, err := LoadEnv()
	if err != nil {
		return nil, err
	}
	if env.Ledger != "" {
		cfg.Ledger.File = env.Ledger
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(ownerName string, age int) *Config {
	return &Config{
		Owner: OwnerConfig{
			Name: ownerName,
			Age:  age,
		},
		Ledger: LedgerConfig{
			File: "ledger.csv",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Life WBS",
			AuthorEmail: "ledger@localhost",
		},
	}
}
