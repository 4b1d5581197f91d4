package main

import (
	"os"

	"go.yaml.in/yaml/v4"
)

type serverConfig struct {
	Listen         string `yaml:"listen"`
	HostKeyFile    string `yaml:"host_key_file"`
	LogDir         string `yaml:"log_dir"`
	Prompt         string `yaml:"prompt"`
	MaxConns       int    `yaml:"max_conns"` // concurrent connection limit
	HistoryBytes   int    `yaml:"history_bytes"`
	HistoryEntries int    `yaml:"history_entries"`
}

func defaultConfig() serverConfig {
	return serverConfig{
		Listen:         "0.0.0.0:2222",
		HostKeyFile:    "./mevclid_host_key",
		LogDir:         "./mevclid_logs",
		Prompt:         "mevclid> ",
		MaxConns:       512,
		HistoryBytes:   1024,
		HistoryEntries: 32,
	}
}

// loadConfig reads the YAML config at path over the defaults. An empty
// path means defaults only.
func loadConfig(path string) (serverConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
