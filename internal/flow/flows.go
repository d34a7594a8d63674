package flow

import (
	"io"
	"os"

	"svcctl/internal/config"
	"svcctl/internal/helm"
	"svcctl/internal/kube"
	"svcctl/internal/prompt"
)

// ReleaseClient is the slice of the helm client the flows need.
type ReleaseClient interface {
	ListReleases(namespace string) ([]string, error)
	GetReleaseStatus(release, namespace string) (*helm.ReleaseStatus, error)
	GetReleaseHistory(release, namespace string) (string, error)
}

// ClusterClient is the slice of the kubectl client the flows need.
type ClusterClient interface {
	GetPodsInfo(appLabel, namespace string) ([]kube.PodInfo, error)
	GetConfigContexts() ([]string, error)
	GetNamespaces() ([]string, error)
	GetCurrentContext() (string, error)
	UseConfigContext(context string) (string, error)
}

// Flows bundles the clients, configuration, and prompt functions the
// interactive workflows run against. The prompt functions are fields so
// tests can script selections without a TTY.
type Flows struct {
	Helm ReleaseClient
	Kube ClusterClient
	Cfg  config.SvcctlConfig
	Out  io.Writer

	selectFn      func(title string, items []string, preselect int) (int, error)
	multiSelectFn func(title string, items []string) ([]int, error)
}

// New wires up Flows against the real helm/kubectl clients and the real
// terminal prompts, honoring the configured namespace filter policy.
func New(cfg config.SvcctlConfig) *Flows {
	kubeClient := kube.NewClient()
	kubeClient.SetNamespaceFilters(cfg.NamespaceFilters)

	return &Flows{
		Helm:          helm.NewClient(),
		Kube:          kubeClient,
		Cfg:           cfg,
		Out:           os.Stdout,
		selectFn:      prompt.Select,
		multiSelectFn: prompt.MultiSelect,
	}
}
