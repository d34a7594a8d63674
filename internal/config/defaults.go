package config

// GetDefaultConfig returns the built-in configuration: the environment
// naming convention of the fleet this tool grew up on. Both layers of the
// file-based configuration overlay on top of this.
func GetDefaultConfig() SvcctlConfig {
	return SvcctlConfig{
		Environments: []EnvironmentMapping{
			{Name: "dev", ContextSuffix: "pigeon"},
			{Name: "test", ContextSuffix: "westeu-001-aks"},
		},
		NamespaceFilters: []string{"dev", "test"},
	}
}
