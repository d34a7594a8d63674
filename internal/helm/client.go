package helm

import (
	"encoding/json"
	"time"

	"svcctl/internal/utils"
	"svcctl/pkg/logging"
)

// helmBinary is the executable svcctl shells out to for all release
// operations. It must be present on PATH; svcctl does not install or
// version-check it.
const helmBinary = "helm"

const displayTimeLayout = "2006-01-02 15:04:05"

// Client wraps the helm CLI. It holds no state beyond the runner used to
// spawn subprocesses; every call re-fetches live data from the release
// manager.
type Client struct {
	run utils.Runner
}

// NewClient returns a Client backed by the real process runner.
func NewClient() *Client {
	return &Client{run: utils.RunCommand}
}

// NewClientWithRunner returns a Client backed by the given runner. Used by
// tests to avoid spawning helm.
func NewClientWithRunner(run utils.Runner) *Client {
	return &Client{run: run}
}

// ReleaseInfo is the lifecycle portion of a release status as reported by
// `helm status --output json`.
type ReleaseInfo struct {
	Status       string `json:"status"`
	LastDeployed string `json:"last_deployed"`
	Description  string `json:"description"`
}

// ReleaseStatus is the typed decode of `helm status --output json`. Only the
// fields svcctl displays are modeled; Config carries the release values as-is
// for the image-tag lookup.
type ReleaseStatus struct {
	Name      string                 `json:"name"`
	Namespace string                 `json:"namespace"`
	Info      ReleaseInfo            `json:"info"`
	Config    map[string]interface{} `json:"config"`
	Version   int                    `json:"version"`
}

// ImageTag digs the deployed image tag out of the release values
// (config.image.tag). Releases that do not follow that values convention
// render as "-" rather than failing the whole flow.
func (s *ReleaseStatus) ImageTag() string {
	image, ok := s.Config["image"].(map[string]interface{})
	if !ok {
		return "-"
	}
	tag, ok := image["tag"].(string)
	if !ok || tag == "" {
		return "-"
	}
	return tag
}

// LastDeployedDisplay normalizes the RFC 3339 last-deployed timestamp to
// "yyyy-MM-dd HH:mm:ss" for table display. Unparseable or absent timestamps
// fall back to the raw string or "-".
func (s *ReleaseStatus) LastDeployedDisplay() string {
	if s.Info.LastDeployed == "" {
		return "-"
	}
	t, err := time.Parse(time.RFC3339, s.Info.LastDeployed)
	if err != nil {
		return s.Info.LastDeployed
	}
	return t.Format(displayTimeLayout)
}

// ListReleases returns the names of the releases deployed in the namespace,
// via `helm list -q -n <namespace>`. The underlying run failing (release
// manager unreachable, invalid namespace) propagates as a *CommandError.
// A namespace with no releases yields a single empty-string element; callers
// treat that the same as an empty selection.
func (c *Client) ListReleases(namespace string) ([]string, error) {
	logging.Debug("helm", "Listing releases in namespace %s", namespace)
	stdout, _, err := c.run(helmBinary, "list", "-q", "-n", namespace)
	if err != nil {
		return nil, err
	}
	return utils.SplitLines(stdout), nil
}

// GetReleaseStatus fetches the live status of a release via
// `helm status <release> -n <namespace> --output json` and decodes it.
// A missing release surfaces as a *CommandError from the runner; output that
// is not valid JSON surfaces as a *ParseError.
func (c *Client) GetReleaseStatus(release, namespace string) (*ReleaseStatus, error) {
	args := []string{"status", release, "-n", namespace, "--output", "json"}
	logging.Debug("helm", "Fetching status of release %s in namespace %s", release, namespace)
	stdout, _, err := c.run(helmBinary, args...)
	if err != nil {
		return nil, err
	}

	var status ReleaseStatus
	if err := json.Unmarshal([]byte(stdout), &status); err != nil {
		return nil, &utils.ParseError{
			CommandLine: utils.CommandLine(helmBinary, args...),
			Err:         err,
		}
	}
	return &status, nil
}

// GetReleaseHistory returns the deployment history of a release as the raw
// table text helm prints, for direct display.
func (c *Client) GetReleaseHistory(release, namespace string) (string, error) {
	logging.Debug("helm", "Fetching history of release %s in namespace %s", release, namespace)
	stdout, _, err := c.run(helmBinary, "history", release, "-n", namespace, "--output", "table")
	if err != nil {
		return "", err
	}
	return stdout, nil
}
