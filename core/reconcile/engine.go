package reconcile

import (
	"context"

	"blog-sync/core/remote"
)

// Outcome bundles the plan of one kind with the result of applying it.
type Outcome struct {
	Plan   *ReconcilePlan `json:"plan"`
	Result *ApplyResult   `json:"result"`
}

// Reconcile plans and applies the reconciliation of one kind.
// On an apply error the outcome still carries the plan and what was applied so far.
func Reconcile(ctx context.Context, spec *Spec, client remote.Client, opts ReconcileOptions) (*Outcome, error) {
	plan, err := ReconcileWithPlan(ctx, spec, client)
	if err != nil {
		return nil, err
	}

	result, err := ApplyPlan(ctx, spec, client, plan, opts)
	return &Outcome{Plan: plan, Result: result}, err
}

// CountActions returns how many actions of type t a plan holds.
func (p *ReconcilePlan) CountActions(t ActionType) int {
	n := 0
	for _, a := range p.Actions {
		if a.Type == t {
			n++
		}
	}
	return n
}
