package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/svcctl"
	projectConfigDir = ".svcctl"
	configFileName   = "config.yaml"
)

// LoadConfig loads the svcctl configuration by layering default, user, and
// project settings. Missing files are fine; unreadable or malformed files
// are not.
func LoadConfig() (SvcctlConfig, error) {
	// 1. Start with the built-in defaults
	config := GetDefaultConfig()

	// 2. User-specific configuration
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional; warn and carry on.
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return SvcctlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			config = mergeConfigs(config, userConfig)
		}
	}

	// 3. Project-specific configuration
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
			projectConfig, err := loadConfigFromFile(projectConfigPath)
			if err != nil {
				return SvcctlConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
			}
			config = mergeConfigs(config, projectConfig)
		}
	}

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a SvcctlConfig from a YAML file.
func loadConfigFromFile(filePath string) (SvcctlConfig, error) {
	var config SvcctlConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return SvcctlConfig{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return SvcctlConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Environment
// entries are merged by name (overlay replaces same-name base entries,
// otherwise appends, base order first). A non-empty overlay filter list
// replaces the base list wholesale.
func mergeConfigs(base, overlay SvcctlConfig) SvcctlConfig {
	mergedConfig := base

	if len(overlay.Environments) > 0 {
		byName := make(map[string]int)
		merged := make([]EnvironmentMapping, len(base.Environments))
		copy(merged, base.Environments)
		for i, env := range merged {
			byName[env.Name] = i
		}
		for _, env := range overlay.Environments {
			if i, ok := byName[env.Name]; ok {
				merged[i] = env
			} else {
				byName[env.Name] = len(merged)
				merged = append(merged, env)
			}
		}
		mergedConfig.Environments = merged
	}

	if len(overlay.NamespaceFilters) > 0 {
		mergedConfig.NamespaceFilters = overlay.NamespaceFilters
	}

	return mergedConfig
}

// GetUserConfigDir returns the user configuration directory path.
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
