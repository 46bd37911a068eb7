package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// City pairs a display name with its IANA zone and the format preset used
// when showing its local time.
type City struct {
	Name   string `yaml:"name"`
	Zone   string `yaml:"zone"`
	Preset string `yaml:"preset"`
}

type Cfg struct {
	LogLevel string            `yaml:"log_level"`
	Cities   []City            `yaml:"cities"`
	Presets  map[string]string `yaml:"presets"`
}

// Default returns the built-in travel catalog used when no config file is
// present.
func Default() *Cfg {
	return &Cfg{
		LogLevel: "info",
		Cities: []City{
			{Name: "New York", Zone: "America/New_York", Preset: "US"},
			{Name: "London", Zone: "Europe/London", Preset: "UK"},
			{Name: "Tokyo", Zone: "Asia/Tokyo", Preset: "UK"},
			{Name: "Sydney", Zone: "Australia/Sydney", Preset: "UK"},
			{Name: "Paris", Zone: "Europe/Paris", Preset: "UK"},
			{Name: "Dubai", Zone: "Asia/Dubai", Preset: "UK"},
			{Name: "Los Angeles", Zone: "America/Los_Angeles", Preset: "US"},
			{Name: "Singapore", Zone: "Asia/Singapore", Preset: "UK"},
		},
		Presets: map[string]string{},
	}
}

// ReadYaml loads the config file, falling back to defaults when the file
// does not exist. Fields left empty in the file keep their defaults.
func ReadYaml(path string) (*Cfg, error) {
	cfg := Default()

	yamlData, err := os.ReadFile(path)

	if os.IsNotExist(err) {
		return cfg, nil
	}

	if err != nil {
		//nolint:errorlint // no wrap
		return nil, fmt.Errorf("config: could not read file. %v", err)
	}

	var fileCfg Cfg
	err = yaml.Unmarshal(yamlData, &fileCfg)

	if err != nil {
		//nolint:errorlint // no wrap
		return nil, fmt.Errorf("config: could not unmarshal cfg. %v", err)
	}

	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}

	if len(fileCfg.Cities) > 0 {
		cfg.Cities = fileCfg.Cities

		for i := range cfg.Cities {
			if cfg.Cities[i].Preset == "" {
				cfg.Cities[i].Preset = "UK"
			}
		}
	}

	for name, pattern := range fileCfg.Presets {
		cfg.Presets[name] = pattern
	}

	return cfg, nil
}

// FindCity looks a city up by its catalog position, 1-based as shown in
// the menu.
func (c *Cfg) FindCity(index int) (City, error) {
	if index < 1 || index > len(c.Cities) {
		return City{}, fmt.Errorf("config: no city number %d, pick 1-%d", index, len(c.Cities))
	}

	return c.Cities[index-1], nil
}
