package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, filename string, content SvcctlConfig) string {
	t.Helper()
	tempFilePath := filepath.Join(dir, filename)
	data, err := yaml.Marshal(&content)
	assert.NoError(t, err)
	err = os.WriteFile(tempFilePath, data, 0644)
	assert.NoError(t, err)
	return tempFilePath
}

// pointPathsAt redirects the user/project config lookups for the duration of
// a test.
func pointPathsAt(t *testing.T, userPath, projectPath string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
	})
	getUserConfigPath = func() (string, error) { return userPath, nil }
	getProjectConfigPath = func() (string, error) { return projectPath, nil }
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	tempDir := t.TempDir()
	pointPathsAt(t,
		filepath.Join(tempDir, "non-existent-user-config.yaml"),
		filepath.Join(tempDir, "non-existent-project-config.yaml"),
	)

	loadedConfig, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loadedConfig)
}

func TestLoadConfig_UserOverridesSameNameEnvironment(t *testing.T) {
	tempDir := t.TempDir()
	userPath := createTempConfigFile(t, tempDir, "user.yaml", SvcctlConfig{
		Environments: []EnvironmentMapping{
			{Name: "dev", ContextSuffix: "sparrow"},
		},
	})
	pointPathsAt(t, userPath, filepath.Join(tempDir, "missing-project.yaml"))

	loadedConfig, err := LoadConfig()
	assert.NoError(t, err)

	// dev is replaced, test survives from the defaults, order is stable.
	assert.Equal(t, []EnvironmentMapping{
		{Name: "dev", ContextSuffix: "sparrow"},
		{Name: "test", ContextSuffix: "westeu-001-aks"},
	}, loadedConfig.Environments)
	assert.Equal(t, []string{"dev", "test"}, loadedConfig.NamespaceFilters)
}

func TestLoadConfig_ProjectWinsOverUser(t *testing.T) {
	tempDir := t.TempDir()
	userPath := createTempConfigFile(t, tempDir, "user.yaml", SvcctlConfig{
		Environments: []EnvironmentMapping{{Name: "dev", ContextSuffix: "sparrow"}},
	})
	projectPath := createTempConfigFile(t, tempDir, "project.yaml", SvcctlConfig{
		Environments: []EnvironmentMapping{
			{Name: "dev", ContextSuffix: "falcon"},
			{Name: "staging", ContextSuffix: "weu-002-aks"},
		},
		NamespaceFilters: []string{"dev", "test", "staging"},
	})
	pointPathsAt(t, userPath, projectPath)

	loadedConfig, err := LoadConfig()
	assert.NoError(t, err)

	assert.Equal(t, []EnvironmentMapping{
		{Name: "dev", ContextSuffix: "falcon"},
		{Name: "test", ContextSuffix: "westeu-001-aks"},
		{Name: "staging", ContextSuffix: "weu-002-aks"},
	}, loadedConfig.Environments)
	// A non-empty overlay filter list replaces the base list wholesale.
	assert.Equal(t, []string{"dev", "test", "staging"}, loadedConfig.NamespaceFilters)
}

func TestLoadConfig_MalformedFileFails(t *testing.T) {
	tempDir := t.TempDir()
	userPath := filepath.Join(tempDir, "user.yaml")
	assert.NoError(t, os.WriteFile(userPath, []byte("environments: [not: valid: yaml"), 0644))
	pointPathsAt(t, userPath, filepath.Join(tempDir, "missing-project.yaml"))

	_, err := LoadConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "error loading user config")
}

func TestMergeConfigs_EmptyOverlayKeepsBase(t *testing.T) {
	base := GetDefaultConfig()
	merged := mergeConfigs(base, SvcctlConfig{})
	assert.Equal(t, base, merged)
}
