package kube

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	corev1 "k8s.io/api/core/v1"

	"svcctl/internal/utils"
	"svcctl/pkg/logging"
)

// kubectlBinary is the executable svcctl shells out to for all cluster
// operations. It must be on PATH with a valid kubeconfig.
const kubectlBinary = "kubectl"

const startTimeLayout = "2006-01-02 15:04:05"

// defaultNamespaceFilters narrows namespace listings to development and test
// environments. Overridable via configuration.
var defaultNamespaceFilters = []string{"dev", "test"}

// UnknownContextError reports a context switch request for a context the
// cluster does not know about. No mutating call is issued in that case.
type UnknownContextError struct {
	Context string
}

func (e *UnknownContextError) Error() string {
	return fmt.Sprintf("context '%s' does not exist in the cluster's context list", e.Context)
}

// Client wraps the kubectl CLI. Stateless apart from the runner and the
// namespace filter policy; every call re-fetches live cluster state.
type Client struct {
	run     utils.Runner
	filters []string
}

// NewClient returns a Client backed by the real process runner and the
// default dev/test namespace filters.
func NewClient() *Client {
	return NewClientWithRunner(utils.RunCommand)
}

// NewClientWithRunner returns a Client backed by the given runner. Used by
// tests to avoid spawning kubectl.
func NewClientWithRunner(run utils.Runner) *Client {
	return &Client{run: run, filters: defaultNamespaceFilters}
}

// SetNamespaceFilters replaces the namespace filter substrings. An empty
// list keeps the defaults.
func (c *Client) SetNamespaceFilters(filters []string) {
	if len(filters) > 0 {
		c.filters = filters
	}
}

// PodInfo is the display summary of one pod.
type PodInfo struct {
	Name      string
	Status    string
	StartTime string
	ImageTag  string
}

// podList matches the shape of `kubectl get ... -o json` list output. Items
// decode as typed pods; the per-item kind survives the decode via TypeMeta.
type podList struct {
	Items []corev1.Pod `json:"items"`
}

// GetPodsInfo lists the pods labeled app=<appLabel> in the namespace via
// `kubectl get pods -o json` and summarizes each item of kind "Pod",
// preserving the order kubectl returned. Items of any other kind are
// excluded entirely.
func (c *Client) GetPodsInfo(appLabel, namespace string) ([]PodInfo, error) {
	args := []string{"get", "pods", "-n", namespace, "-l", "app=" + appLabel, "-o", "json"}
	logging.Debug("kube", "Listing pods for app %s in namespace %s", appLabel, namespace)
	stdout, _, err := c.run(kubectlBinary, args...)
	if err != nil {
		return nil, err
	}

	var list podList
	if err := json.Unmarshal([]byte(stdout), &list); err != nil {
		return nil, &utils.ParseError{
			CommandLine: utils.CommandLine(kubectlBinary, args...),
			Err:         err,
		}
	}

	infos := make([]PodInfo, 0, len(list.Items))
	for _, pod := range list.Items {
		if pod.Kind != "Pod" {
			continue
		}
		infos = append(infos, PodInfo{
			Name:      pod.Name,
			Status:    string(pod.Status.Phase),
			StartTime: formatStartTime(&pod),
			ImageTag:  containerImageTag(&pod),
		})
	}
	return infos, nil
}

func formatStartTime(pod *corev1.Pod) string {
	if pod.Status.StartTime == nil {
		return "-"
	}
	return pod.Status.StartTime.Format(startTimeLayout)
}

// containerImageTag extracts the tag of the first container's image by
// splitting on ":" and taking the second segment. Image references that
// carry a registry port (host:5000/app:v1) misparse under this rule; the
// behavior is kept as-is because the fleets this tool targets do not use
// ported registries. Images without any colon render as "-".
func containerImageTag(pod *corev1.Pod) string {
	if len(pod.Spec.Containers) == 0 {
		return "-"
	}
	parts := strings.Split(pod.Spec.Containers[0].Image, ":")
	if len(parts) < 2 {
		return "-"
	}
	return parts[1]
}

// GetConfigContexts returns the names of all kubeconfig contexts via
// `kubectl config get-contexts -o name`.
func (c *Client) GetConfigContexts() ([]string, error) {
	stdout, _, err := c.run(kubectlBinary, "config", "get-contexts", "-o", "name")
	if err != nil {
		return nil, err
	}
	return utils.SplitLines(stdout), nil
}

// GetNamespaces lists namespaces via `kubectl get namespaces -o name`,
// keeps only those containing one of the configured filter substrings
// (dev/test by default), and strips the "namespace/" resource prefix.
// Order is preserved.
func (c *Client) GetNamespaces() ([]string, error) {
	stdout, _, err := c.run(kubectlBinary, "get", "namespaces", "-o", "name")
	if err != nil {
		return nil, err
	}

	var namespaces []string
	for _, line := range utils.SplitLines(stdout) {
		if line == "" {
			continue
		}
		matched := false
		for _, filter := range c.filters {
			if strings.Contains(line, filter) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		if idx := strings.Index(line, "/"); idx >= 0 {
			line = line[idx+1:]
		}
		namespaces = append(namespaces, line)
	}
	return namespaces, nil
}

// GetCurrentContext returns the active kubeconfig context name, trimmed.
func (c *Client) GetCurrentContext() (string, error) {
	stdout, _, err := c.run(kubectlBinary, "config", "current-context")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(stdout), nil
}

// UseConfigContext switches the active kubeconfig context. The requested
// context is validated against GetConfigContexts first; an unknown context
// yields *UnknownContextError and no mutating call. On success kubectl's
// stdout is returned for display.
func (c *Client) UseConfigContext(context string) (string, error) {
	contexts, err := c.GetConfigContexts()
	if err != nil {
		return "", err
	}
	if !slices.Contains(contexts, context) {
		return "", &UnknownContextError{Context: context}
	}

	logging.Info("kube", "Switching kubeconfig context to %s", context)
	stdout, _, err := c.run(kubectlBinary, "config", "use-context", context)
	if err != nil {
		return "", err
	}
	return stdout, nil
}
