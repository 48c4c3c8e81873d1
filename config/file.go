package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type fileConfig struct {
	LogLevel     string     `yaml:"log_level"`
	ServicePort  string     `yaml:"service_port"`
	GRPCPort     string     `yaml:"grpc_port"`
	FetchTimeout string     `yaml:"fetch_timeout"`
	UserAgent    string     `yaml:"user_agent"`
	Categories   []Category `yaml:"categories"`
}

// ApplyFile overlays settings from a YAML file onto cfg.
// Only keys present in the file override the current values.
func ApplyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var f fileConfig
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}

	if f.LogLevel != "" {
		cfg.Logging.Level = f.LogLevel
	}
	if f.ServicePort != "" {
		cfg.Service.Port = f.ServicePort
	}
	if f.GRPCPort != "" {
		cfg.Service.GRPCPort = f.GRPCPort
	}
	if f.UserAgent != "" {
		cfg.YouTube.UserAgent = f.UserAgent
	}
	if f.FetchTimeout != "" {
		d, err := time.ParseDuration(f.FetchTimeout)
		if err != nil {
			return fmt.Errorf("invalid fetch_timeout %q: %w", f.FetchTimeout, err)
		}
		cfg.YouTube.FetchTimeout = d
	}
	if len(f.Categories) > 0 {
		cats := make([]Category, 0, len(f.Categories))
		for _, c := range f.Categories {
			c.ID = NormalizeCategoryID(c.ID)
			cats = append(cats, c)
		}
		cfg.Catalog.Categories = cats
	}
	return nil
}
