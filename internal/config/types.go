package config

// SvcctlConfig is the top-level configuration structure for svcctl.
type SvcctlConfig struct {
	Environments     []EnvironmentMapping `yaml:"environments"`
	NamespaceFilters []string             `yaml:"namespaceFilters"`
}

// EnvironmentMapping ties a short environment name shown in the
// switch-context prompt (e.g. "dev") to the suffix its kubeconfig context
// carries (e.g. "pigeon"). The first context ending in ContextSuffix is the
// one the choice switches to.
type EnvironmentMapping struct {
	Name          string `yaml:"name"`
	ContextSuffix string `yaml:"contextSuffix"`
}
