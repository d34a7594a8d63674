package flow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"svcctl/internal/helm"
	"svcctl/internal/kube"
)

func releaseStatusFixture(name string) *helm.ReleaseStatus {
	return &helm.ReleaseStatus{
		Name: name,
		Info: helm.ReleaseInfo{
			Status:       "deployed",
			LastDeployed: "2026-03-14T09:26:53Z",
		},
		Config: map[string]interface{}{
			"image": map[string]interface{}{"tag": "1.42.0"},
		},
	}
}

func TestServiceStatus_CancelledNamespacePrompt(t *testing.T) {
	h := &fakeHelm{releases: []string{"checkout"}}
	k := &fakeKube{namespaces: []string{"dev-a", "test-c"}}
	flows, _ := newTestFlows(h, k, &promptScript{selections: []promptAnswer{cancel()}})

	outcome := flows.ServiceStatus()
	assert.Equal(t, StatusCancelled, outcome.Status)
	assert.Zero(t, h.listCalls)
}

func TestServiceStatus_CancelledReleasePromptFetchesNothing(t *testing.T) {
	h := &fakeHelm{releases: []string{"checkout", "payments"}}
	k := &fakeKube{namespaces: []string{"dev-a"}}
	flows, _ := newTestFlows(h, k, &promptScript{selections: []promptAnswer{
		answer(0),
		cancel(),
	}})

	outcome := flows.ServiceStatus()
	assert.Equal(t, StatusCancelled, outcome.Status)

	// No status, pod, or history fetches after an aborted selection.
	assert.Zero(t, h.statusCalls)
	assert.Zero(t, h.historyCalls)
	assert.Zero(t, k.podsCalls)
}

func TestServiceStatus_EmptySelectionTreatedLikeCancel(t *testing.T) {
	h := &fakeHelm{releases: []string{"checkout"}}
	k := &fakeKube{namespaces: []string{"dev-a"}}
	flows, _ := newTestFlows(h, k, &promptScript{selections: []promptAnswer{
		answer(0),
		answerMulti(), // confirmed, nothing toggled
	}})

	outcome := flows.ServiceStatus()
	assert.Equal(t, StatusCancelled, outcome.Status)
	assert.Zero(t, h.statusCalls)
}

func TestServiceStatus_SingleReleaseGetsDetails(t *testing.T) {
	h := &fakeHelm{
		releases: []string{"checkout", "payments"},
		statuses: map[string]*helm.ReleaseStatus{"checkout": releaseStatusFixture("checkout")},
		history:  "REVISION\tSTATUS\n7\tdeployed\n",
	}
	k := &fakeKube{
		namespaces: []string{"dev-a"},
		pods: []kube.PodInfo{
			{Name: "checkout-abc", Status: "Running", StartTime: "2026-03-14 09:27:10", ImageTag: "1.42.0"},
		},
	}
	flows, out := newTestFlows(h, k, &promptScript{selections: []promptAnswer{
		answer(0),
		answerMulti(0),
	}})

	outcome := flows.ServiceStatus()
	assert.Equal(t, StatusCompleted, outcome.Status)

	// Exactly one selection drills down: status, pods, and history.
	assert.Equal(t, 1, h.statusCalls)
	assert.Equal(t, 1, k.podsCalls)
	assert.Equal(t, 1, h.historyCalls)

	rendered := out.String()
	assert.Contains(t, rendered, "checkout")
	assert.Contains(t, rendered, "1.42.0")
	assert.Contains(t, rendered, "deployed")
	assert.Contains(t, rendered, "checkout-abc")
	assert.Contains(t, rendered, "REVISION")
}

func TestServiceStatus_MultipleReleasesSummaryOnly(t *testing.T) {
	h := &fakeHelm{releases: []string{"checkout", "payments", "cart"}}
	k := &fakeKube{namespaces: []string{"dev-a"}}
	flows, _ := newTestFlows(h, k, &promptScript{selections: []promptAnswer{
		answer(0),
		answerMulti(0, 2),
	}})

	outcome := flows.ServiceStatus()
	assert.Equal(t, StatusCompleted, outcome.Status)

	// One status fetch per selected release, no pod or history calls.
	assert.Equal(t, 2, h.statusCalls)
	assert.Zero(t, k.podsCalls)
	assert.Zero(t, h.historyCalls)
}

func TestServiceStatus_NamespaceFetchFailure(t *testing.T) {
	boom := errors.New("cluster unreachable")
	k := &fakeKube{namespacesErr: boom}
	flows, _ := newTestFlows(&fakeHelm{}, k, &promptScript{})

	outcome := flows.ServiceStatus()
	assert.Equal(t, StatusFailed, outcome.Status)
	assert.ErrorIs(t, outcome.Err, boom)
}

func TestServiceStatus_StatusFetchFailureFailsFlow(t *testing.T) {
	boom := errors.New("release not found")
	h := &fakeHelm{releases: []string{"checkout"}, statusErr: boom}
	k := &fakeKube{namespaces: []string{"dev-a"}}
	flows, _ := newTestFlows(h, k, &promptScript{selections: []promptAnswer{
		answer(0),
		answerMulti(0),
	}})

	outcome := flows.ServiceStatus()
	assert.Equal(t, StatusFailed, outcome.Status)
	assert.ErrorIs(t, outcome.Err, boom)
	assert.Zero(t, k.podsCalls)
}

func TestServiceStatus_NoMatchingNamespaces(t *testing.T) {
	k := &fakeKube{namespaces: nil}
	flows, out := newTestFlows(&fakeHelm{}, k, &promptScript{})

	outcome := flows.ServiceStatus()
	assert.Equal(t, StatusCompleted, outcome.Status)
	assert.Contains(t, out.String(), "No dev or test namespaces")
}
