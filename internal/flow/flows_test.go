package flow

import (
	"bytes"

	"svcctl/internal/config"
	"svcctl/internal/helm"
	"svcctl/internal/kube"
	"svcctl/internal/prompt"
)

// fakeHelm implements ReleaseClient and counts every fetch.
type fakeHelm struct {
	releases []string
	statuses map[string]*helm.ReleaseStatus
	history  string

	listErr    error
	statusErr  error
	historyErr error

	listCalls    int
	statusCalls  int
	historyCalls int
}

func (f *fakeHelm) ListReleases(namespace string) ([]string, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.releases, nil
}

func (f *fakeHelm) GetReleaseStatus(release, namespace string) (*helm.ReleaseStatus, error) {
	f.statusCalls++
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	if status, ok := f.statuses[release]; ok {
		return status, nil
	}
	return &helm.ReleaseStatus{Name: release, Namespace: namespace}, nil
}

func (f *fakeHelm) GetReleaseHistory(release, namespace string) (string, error) {
	f.historyCalls++
	if f.historyErr != nil {
		return "", f.historyErr
	}
	return f.history, nil
}

// fakeKube implements ClusterClient and counts every fetch.
type fakeKube struct {
	namespaces []string
	contexts   []string
	current    string
	pods       []kube.PodInfo

	namespacesErr error
	currentErr    error
	contextsErr   error
	podsErr       error

	podsCalls       int
	useContextCalls int
	usedContext     string
}

func (f *fakeKube) GetPodsInfo(appLabel, namespace string) ([]kube.PodInfo, error) {
	f.podsCalls++
	if f.podsErr != nil {
		return nil, f.podsErr
	}
	return f.pods, nil
}

func (f *fakeKube) GetConfigContexts() ([]string, error) {
	if f.contextsErr != nil {
		return nil, f.contextsErr
	}
	return f.contexts, nil
}

func (f *fakeKube) GetNamespaces() ([]string, error) {
	if f.namespacesErr != nil {
		return nil, f.namespacesErr
	}
	return f.namespaces, nil
}

func (f *fakeKube) GetCurrentContext() (string, error) {
	if f.currentErr != nil {
		return "", f.currentErr
	}
	return f.current, nil
}

func (f *fakeKube) UseConfigContext(context string) (string, error) {
	f.useContextCalls++
	f.usedContext = context
	return "Switched to context \"" + context + "\".\n", nil
}

// promptScript scripts the prompts a flow will show, in order. Each entry is
// either a selection or a cancellation.
type promptScript struct {
	selections []promptAnswer
	next       int

	// captured for assertions
	preselects []int
	titles     []string
}

type promptAnswer struct {
	single    int
	multi     []int
	cancelled bool
}

func answer(idx int) promptAnswer          { return promptAnswer{single: idx} }
func answerMulti(idxs ...int) promptAnswer { return promptAnswer{multi: idxs} }
func cancel() promptAnswer                 { return promptAnswer{cancelled: true} }

func (s *promptScript) pop() promptAnswer {
	if s.next >= len(s.selections) {
		return cancel()
	}
	a := s.selections[s.next]
	s.next++
	return a
}

func (s *promptScript) selectFn(title string, items []string, preselect int) (int, error) {
	s.titles = append(s.titles, title)
	s.preselects = append(s.preselects, preselect)
	a := s.pop()
	if a.cancelled {
		return 0, prompt.ErrCancelled
	}
	return a.single, nil
}

func (s *promptScript) multiSelectFn(title string, items []string) ([]int, error) {
	s.titles = append(s.titles, title)
	a := s.pop()
	if a.cancelled {
		return nil, prompt.ErrCancelled
	}
	return a.multi, nil
}

// newTestFlows wires fakes and a scripted prompt into a Flows with a buffer
// for output assertions.
func newTestFlows(h *fakeHelm, k *fakeKube, script *promptScript) (*Flows, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &Flows{
		Helm:          h,
		Kube:          k,
		Cfg:           config.GetDefaultConfig(),
		Out:           out,
		selectFn:      script.selectFn,
		multiSelectFn: script.multiSelectFn,
	}, out
}
