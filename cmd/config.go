package cmd

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls input discovery for batch lexing.
type Config struct {
	// Extensions restricts which files directory arguments contribute.
	// Empty means every file.
	Extensions []string `yaml:"extensions"`
}

func parseConfigurationFile(configurationPath string) (Config, error) {
	var config Config
	if configurationPath == "" {
		return config, nil
	}

	f, err := os.Open(configurationPath)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
