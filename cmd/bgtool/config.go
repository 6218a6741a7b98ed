package main

import (
	"fmt"
	"os"

	bgmodels "github.com/AnatomicMaps/BG-models"
	"gopkg.in/yaml.v3"
)

func loadConfig(path string) (*bgmodels.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	config := bgmodels.DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, nil
}
