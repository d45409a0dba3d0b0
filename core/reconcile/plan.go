package reconcile

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"blog-sync/core/remote"

	"golang.org/x/sync/errgroup"
)

// ReconcileWithPlan compares the remote collection of a kind with the local store
// and returns the remote mutations needed to make the remote side match.
// It does NOT execute actions; use ApplyPlan for that.
//
// For every remote record, in API order: a local record with the same id and a
// different projection yields an update carrying the full local projection; no
// local record yields a delete. Local records outside the remote id set yield a
// create each.
func ReconcileWithPlan(ctx context.Context, spec *Spec, client remote.Client) (*ReconcilePlan, error) {
	adapter := spec.Adapter

	remoteItems, err := adapter.LoadRemote(ctx, client)
	if err != nil {
		return nil, err
	}

	keys := make([]int64, len(remoteItems))
	for i, item := range remoteItems {
		key, err := adapter.ExtractRemoteKey(item)
		if err != nil {
			return nil, err
		}
		keys[i] = key
	}

	localIndex, err := adapter.LoadLocalIndex(ctx, keys)
	if err != nil {
		return nil, err
	}

	plan := &ReconcilePlan{
		Kind:    adapter.Name(),
		Actions: []Action{},
		Summary: PlanSummary{RemoteItems: len(remoteItems)},
	}

	for i, item := range remoteItems {
		key := keys[i]

		local, ok := localIndex[key]
		if !ok {
			plan.Actions = append(plan.Actions, Action{
				Type:   ActionDeleteRemote,
				Key:    key,
				URL:    adapter.ItemURL(key),
				Reason: "not present locally",
			})
			plan.Summary.Deletes++
			continue
		}

		plan.Summary.LocalMatched++

		field, err := adapter.CompareFields(local, item)
		if err != nil {
			return nil, err
		}
		if field == "" {
			plan.Summary.InSync++
			continue
		}

		plan.Actions = append(plan.Actions, Action{
			Type:    ActionUpdateRemote,
			Key:     key,
			URL:     adapter.ItemURL(key),
			Reason:  fmt.Sprintf("%s differs", field),
			Payload: adapter.Payload(local),
		})
		plan.Summary.Updates++
	}

	localOnly, err := adapter.LoadLocalOnly(ctx, keys)
	if err != nil {
		return nil, err
	}

	for _, local := range localOnly {
		plan.Actions = append(plan.Actions, Action{
			Type:    ActionCreateRemote,
			Key:     adapter.ExtractLocalKey(local),
			URL:     adapter.CollectionURL(),
			Reason:  "not present remotely",
			Payload: adapter.Payload(local),
		})
		plan.Summary.Creates++
	}

	return plan, nil
}

// ApplyPlan executes the actions of a plan against the remote API.
//
// Updates and deletes are issued concurrently and joined first, then creates the
// same way. A call answered with an unexpected status becomes a warning and the
// batch goes on. A transport error cancels the batch, is returned, and no later
// batch starts.
func ApplyPlan(ctx context.Context, spec *Spec, client remote.Client, plan *ReconcilePlan, opts ReconcileOptions) (*ApplyResult, error) {
	result := &ApplyResult{Warnings: []SideEffectWarning{}}

	// Safety check: do not execute on dry-run
	if opts.DryRun {
		result.DryRun = true
		return result, nil
	}

	start := time.Now()

	var changes, creates []Action
	for _, action := range plan.Actions {
		switch action.Type {
		case ActionUpdateRemote, ActionDeleteRemote:
			changes = append(changes, action)
		case ActionCreateRemote:
			creates = append(creates, action)
		}
	}

	for _, batch := range [][]Action{changes, creates} {
		if err := runBatch(ctx, client, batch, spec.MaxInFlight, result); err != nil {
			result.Duration = time.Since(start)
			return result, err
		}
	}

	result.Duration = time.Since(start)
	return result, nil
}

// runBatch issues every action concurrently and waits for all of them.
func runBatch(ctx context.Context, client remote.Client, actions []Action, limit int, result *ApplyResult) error {
	if len(actions) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	var mu sync.Mutex
	var warnings []SideEffectWarning

	for _, action := range actions {
		g.Go(func() error {
			status, err := execute(gctx, client, action)
			if err != nil {
				return fmt.Errorf("%s %d: %w", action.Type, action.Key, err)
			}

			mu.Lock()
			defer mu.Unlock()
			if status == expectedStatus(action.Type) {
				result.Succeeded++
			} else {
				warnings = append(warnings, SideEffectWarning{
					Action: action.Type,
					Key:    action.Key,
					URL:    action.URL,
					Status: status,
				})
			}
			return nil
		})
	}

	err := g.Wait()

	// Sort warnings for deterministic output
	sort.Slice(warnings, func(i, j int) bool {
		if warnings[i].Action != warnings[j].Action {
			return warnings[i].Action < warnings[j].Action
		}
		return warnings[i].Key < warnings[j].Key
	})
	result.Warnings = append(result.Warnings, warnings...)

	return err
}

func execute(ctx context.Context, client remote.Client, action Action) (int, error) {
	switch action.Type {
	case ActionUpdateRemote:
		return client.Update(ctx, action.URL, action.Payload)
	case ActionDeleteRemote:
		return client.Delete(ctx, action.URL)
	case ActionCreateRemote:
		return client.Create(ctx, action.URL, action.Payload)
	default:
		return 0, fmt.Errorf("unknown action type %q", action.Type)
	}
}

func expectedStatus(t ActionType) int {
	switch t {
	case ActionCreateRemote:
		return remote.StatusCreated
	case ActionUpdateRemote:
		return remote.StatusUpdated
	default:
		return remote.StatusDeleted
	}
}
