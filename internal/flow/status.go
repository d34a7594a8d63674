package flow

import (
	"errors"
	"fmt"

	"svcctl/internal/prompt"
	"svcctl/pkg/logging"
)

// ServiceStatus walks the operator through inspecting release status:
// pick a namespace, pick one or more releases, show a status table. When
// exactly one release is picked, its pods and deployment history are shown
// as well; multi-release selections get the summary table only.
func (f *Flows) ServiceStatus() Outcome {
	namespaces, err := f.Kube.GetNamespaces()
	if err != nil {
		return failed(err)
	}
	if len(namespaces) == 0 {
		fmt.Fprintln(f.Out, "No dev or test namespaces found in the current cluster.")
		return completed()
	}

	nsIdx, err := f.selectFn("Select namespace", namespaces, prompt.NoPreselect)
	if errors.Is(err, prompt.ErrCancelled) {
		return cancelled()
	}
	if err != nil {
		return failed(err)
	}
	namespace := namespaces[nsIdx]

	releases, err := f.Helm.ListReleases(namespace)
	if err != nil {
		return failed(err)
	}

	selected, err := f.multiSelectFn(fmt.Sprintf("Select releases in %s", namespace), releases)
	if errors.Is(err, prompt.ErrCancelled) {
		return cancelled()
	}
	if err != nil {
		return failed(err)
	}
	if len(selected) == 0 {
		// An empty confirmed selection aborts the flow just like a cancel;
		// no status, pod, or history fetches happen.
		return cancelled()
	}

	rows := make([][]string, 0, len(selected))
	for _, idx := range selected {
		release := releases[idx]
		status, err := f.Helm.GetReleaseStatus(release, namespace)
		if err != nil {
			return failed(err)
		}
		rows = append(rows, []string{
			status.Name,
			status.ImageTag(),
			status.Info.Status,
			status.LastDeployedDisplay(),
		})
	}

	fmt.Fprintln(f.Out)
	fmt.Fprintln(f.Out, renderTable([]string{"Name", "Image", "Status", "Last Deployed"}, rows))

	// Detail drill-down only applies to single-release selections.
	if len(selected) != 1 {
		return completed()
	}
	release := releases[selected[0]]

	pods, err := f.Kube.GetPodsInfo(release, namespace)
	if err != nil {
		return failed(err)
	}
	podRows := make([][]string, 0, len(pods))
	for _, pod := range pods {
		podRows = append(podRows, []string{pod.Name, pod.Status, pod.StartTime, pod.ImageTag})
	}
	fmt.Fprintln(f.Out)
	fmt.Fprintln(f.Out, renderTable([]string{"Pod", "Status", "Started", "Image"}, podRows))

	history, err := f.Helm.GetReleaseHistory(release, namespace)
	if err != nil {
		return failed(err)
	}
	fmt.Fprintln(f.Out)
	fmt.Fprint(f.Out, history)

	logging.Debug("flow", "Service status flow completed for %d release(s) in %s", len(selected), namespace)
	return completed()
}
