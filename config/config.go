package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"hawkoin/logx"
)

// LoadNetworkConfig reads and parses the network YAML file
func LoadNetworkConfig(path string) (*NetworkConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		logx.Error("CONFIG", fmt.Sprintf("Failed to open %s: %v", path, err))
		return nil, err
	}
	defer file.Close()

	var cfgFile ConfigFile
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfgFile); err != nil {
		logx.Error("CONFIG", fmt.Sprintf("Failed to decode YAML: %v", err))
		return nil, err
	}

	if err := cfgFile.Config.Store.Validate(); err != nil {
		return nil, fmt.Errorf("invalid store config: %w", err)
	}

	logx.Info("CONFIG", fmt.Sprintf("Loaded network config: store=%s participants=%d", cfgFile.Config.Store.Type, len(cfgFile.Config.Participants)))
	return &cfgFile.Config, nil
}
