package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"

	"blog-sync/core/remote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID    int64
	Title string
}

// memAdapter reconciles a local slice with a remote slice held by the adapter itself.
type memAdapter struct {
	local   []item
	remote  []item
	listErr error
}

func (a *memAdapter) Name() string            { return "item" }
func (a *memAdapter) CollectionURL() string   { return "http://api/items" }
func (a *memAdapter) ItemURL(id int64) string { return fmt.Sprintf("http://api/items/%d", id) }

func (a *memAdapter) LoadRemote(ctx context.Context, client remote.Client) ([]RemoteItem, error) {
	if a.listErr != nil {
		return nil, a.listErr
	}
	out := make([]RemoteItem, len(a.remote))
	for i, r := range a.remote {
		out[i] = r
	}
	return out, nil
}

func (a *memAdapter) ExtractRemoteKey(r RemoteItem) (int64, error) {
	return r.(item).ID, nil
}

func (a *memAdapter) LoadLocalIndex(ctx context.Context, ids []int64) (map[int64]LocalItem, error) {
	index := make(map[int64]LocalItem)
	for _, l := range a.local {
		for _, id := range ids {
			if l.ID == id {
				index[id] = l
			}
		}
	}
	return index, nil
}

func (a *memAdapter) LoadLocalOnly(ctx context.Context, ids []int64) ([]LocalItem, error) {
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	var out []LocalItem
	for _, l := range a.local {
		if !seen[l.ID] {
			out = append(out, l)
		}
	}
	return out, nil
}

func (a *memAdapter) ExtractLocalKey(l LocalItem) int64 { return l.(item).ID }

func (a *memAdapter) CompareFields(l LocalItem, r RemoteItem) (string, error) {
	if l.(item).Title != r.(item).Title {
		return "title", nil
	}
	return "", nil
}

func (a *memAdapter) Payload(l LocalItem) any {
	return map[string]any{"title": l.(item).Title}
}

type call struct {
	Method string
	URL    string
}

// recordingClient records every mutating call and answers with configurable statuses.
type recordingClient struct {
	mu       sync.Mutex
	calls    []call
	statuses map[string]int
	failURL  string
}

func (c *recordingClient) record(method, url string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call{Method: method, URL: url})
	if url == c.failURL {
		return 0, &remote.TransportError{Op: method, URL: url, Err: errors.New("connection reset")}
	}
	if status, ok := c.statuses[url]; ok {
		return status, nil
	}
	switch method {
	case "POST":
		return remote.StatusCreated, nil
	default:
		return remote.StatusUpdated, nil
	}
}

func (c *recordingClient) List(ctx context.Context, url string, out any) error { return nil }
func (c *recordingClient) Create(ctx context.Context, url string, payload any) (int, error) {
	return c.record("POST", url)
}
func (c *recordingClient) Update(ctx context.Context, url string, payload any) (int, error) {
	return c.record("PATCH", url)
}
func (c *recordingClient) Delete(ctx context.Context, url string) (int, error) {
	return c.record("DELETE", url)
}
func (c *recordingClient) Close() {}

func (c *recordingClient) sorted() []call {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := append([]call(nil), c.calls...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Method != out[j].Method {
			return out[i].Method < out[j].Method
		}
		return out[i].URL < out[j].URL
	})
	return out
}

func TestReconcileWithPlan_Partition(t *testing.T) {
	adapter := &memAdapter{
		local:  []item{{1, "a"}, {2, "b"}, {4, "d"}},
		remote: []item{{1, "a"}, {2, "b"}, {3, "c"}},
	}

	plan, err := ReconcileWithPlan(context.Background(), &Spec{Adapter: adapter}, &recordingClient{})
	require.NoError(t, err)

	assert.Equal(t, "item", plan.Kind)
	require.Len(t, plan.Actions, 2)
	assert.Equal(t, Action{
		Type:   ActionDeleteRemote,
		Key:    3,
		URL:    "http://api/items/3",
		Reason: "not present locally",
	}, plan.Actions[0])
	assert.Equal(t, Action{
		Type:    ActionCreateRemote,
		Key:     4,
		URL:     "http://api/items",
		Reason:  "not present remotely",
		Payload: map[string]any{"title": "d"},
	}, plan.Actions[1])

	assert.Equal(t, PlanSummary{RemoteItems: 3, LocalMatched: 2, InSync: 2, Deletes: 1, Creates: 1}, plan.Summary)
}

func TestReconcileWithPlan_UpdateCarriesFullPayload(t *testing.T) {
	adapter := &memAdapter{
		local:  []item{{1, "new"}},
		remote: []item{{1, "old"}},
	}

	plan, err := ReconcileWithPlan(context.Background(), &Spec{Adapter: adapter}, &recordingClient{})
	require.NoError(t, err)

	require.Len(t, plan.Actions, 1)
	action := plan.Actions[0]
	assert.Equal(t, ActionUpdateRemote, action.Type)
	assert.Equal(t, "http://api/items/1", action.URL)
	assert.Equal(t, "title differs", action.Reason)
	assert.Equal(t, map[string]any{"title": "new"}, action.Payload)
	assert.Equal(t, 1, plan.CountActions(ActionUpdateRemote))
}

func TestReconcileWithPlan_InSyncIsEmpty(t *testing.T) {
	adapter := &memAdapter{
		local:  []item{{1, "a"}, {2, "b"}},
		remote: []item{{1, "a"}, {2, "b"}},
	}

	plan, err := ReconcileWithPlan(context.Background(), &Spec{Adapter: adapter}, &recordingClient{})
	require.NoError(t, err)
	assert.Empty(t, plan.Actions)
	assert.Equal(t, 2, plan.Summary.InSync)
}

func TestReconcileWithPlan_ListFailureAborts(t *testing.T) {
	listErr := &remote.TransportError{Op: "GET", URL: "http://api/items", StatusCode: 500}
	adapter := &memAdapter{local: []item{{1, "a"}}, listErr: listErr}
	client := &recordingClient{}

	outcome, err := Reconcile(context.Background(), &Spec{Adapter: adapter}, client, ReconcileOptions{})
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, listErr)
	assert.Empty(t, client.calls)
}

func TestApplyPlan_IssuesEveryAction(t *testing.T) {
	adapter := &memAdapter{
		local:  []item{{1, "a2"}, {2, "b"}, {5, "e"}, {6, "f"}},
		remote: []item{{1, "a"}, {2, "b"}, {3, "c"}, {4, "d"}},
	}
	client := &recordingClient{}

	outcome, err := Reconcile(context.Background(), &Spec{Adapter: adapter}, client, ReconcileOptions{})
	require.NoError(t, err)

	assert.Equal(t, 5, outcome.Result.Succeeded)
	assert.Empty(t, outcome.Result.Warnings)
	assert.False(t, outcome.Result.DryRun)

	assert.Equal(t, []call{
		{"DELETE", "http://api/items/3"},
		{"DELETE", "http://api/items/4"},
		{"PATCH", "http://api/items/1"},
		{"POST", "http://api/items"},
		{"POST", "http://api/items"},
	}, client.sorted())
}

func TestApplyPlan_CreatesAfterChanges(t *testing.T) {
	adapter := &memAdapter{
		local:  []item{{1, "a2"}, {5, "e"}},
		remote: []item{{1, "a"}, {3, "c"}},
	}
	client := &recordingClient{}

	_, err := Reconcile(context.Background(), &Spec{Adapter: adapter}, client, ReconcileOptions{})
	require.NoError(t, err)

	require.Len(t, client.calls, 3)
	assert.Equal(t, "POST", client.calls[2].Method)
}

func TestApplyPlan_UnexpectedStatusIsWarning(t *testing.T) {
	adapter := &memAdapter{
		local:  []item{{1, "a2"}},
		remote: []item{{1, "a"}, {3, "c"}},
	}
	client := &recordingClient{statuses: map[string]int{"http://api/items/3": 404}}

	outcome, err := Reconcile(context.Background(), &Spec{Adapter: adapter}, client, ReconcileOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, outcome.Result.Succeeded)
	assert.Equal(t, []SideEffectWarning{
		{Action: ActionDeleteRemote, Key: 3, URL: "http://api/items/3", Status: 404},
	}, outcome.Result.Warnings)
}

func TestApplyPlan_TransportErrorStopsCreates(t *testing.T) {
	adapter := &memAdapter{
		local:  []item{{5, "e"}},
		remote: []item{{3, "c"}},
	}
	client := &recordingClient{failURL: "http://api/items/3"}

	outcome, err := Reconcile(context.Background(), &Spec{Adapter: adapter}, client, ReconcileOptions{})

	var te *remote.TransportError
	require.ErrorAs(t, err, &te)
	assert.Contains(t, err.Error(), "delete_remote 3")
	require.NotNil(t, outcome)
	assert.Equal(t, 2, outcome.Plan.Summary.Creates+outcome.Plan.Summary.Deletes)

	for _, c := range client.calls {
		assert.NotEqual(t, "POST", c.Method, "no create after a failed batch")
	}
}

func TestApplyPlan_DryRun(t *testing.T) {
	adapter := &memAdapter{
		local:  []item{{1, "a2"}, {5, "e"}},
		remote: []item{{1, "a"}, {3, "c"}},
	}
	client := &recordingClient{}

	outcome, err := Reconcile(context.Background(), &Spec{Adapter: adapter}, client, ReconcileOptions{DryRun: true})
	require.NoError(t, err)

	assert.True(t, outcome.Result.DryRun)
	assert.Len(t, outcome.Plan.Actions, 3)
	assert.Empty(t, client.calls)
}

func TestApplyPlan_MaxInFlight(t *testing.T) {
	var local, remoteItems []item
	for id := int64(1); id <= 10; id++ {
		remoteItems = append(remoteItems, item{id, "x"})
		local = append(local, item{id, "y"})
	}
	adapter := &memAdapter{local: local, remote: remoteItems}
	client := &recordingClient{}

	outcome, err := Reconcile(context.Background(), &Spec{Adapter: adapter, MaxInFlight: 2}, client, ReconcileOptions{})
	require.NoError(t, err)
	assert.Equal(t, 10, outcome.Result.Succeeded)
	assert.Len(t, client.calls, 10)
}

func TestReconcileWithPlan_EmptyLocalDeletesAll(t *testing.T) {
	adapter := &memAdapter{remote: []item{{1, "a"}, {2, "b"}, {3, "c"}}}

	plan, err := ReconcileWithPlan(context.Background(), &Spec{Adapter: adapter}, &recordingClient{})
	require.NoError(t, err)

	assert.Equal(t, 3, plan.CountActions(ActionDeleteRemote))
	assert.Equal(t, PlanSummary{RemoteItems: 3, Deletes: 3}, plan.Summary)
}
