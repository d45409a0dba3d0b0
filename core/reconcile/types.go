package reconcile

import "time"

// LocalItem represents a locally stored record.
// Adapters define the concrete type.
type LocalItem any

// RemoteItem represents a record decoded from the remote API.
// Adapters define the concrete type.
type RemoteItem any

// Spec defines the configuration for a reconciliation operation.
type Spec struct {
	// Adapter provides kind-specific reconciliation logic.
	Adapter Adapter

	// MaxInFlight caps concurrent remote calls per batch. Zero means unbounded.
	MaxInFlight int
}

// ActionType represents the type of remote mutation.
type ActionType string

const (
	// ActionUpdateRemote patches a remote record with the local projection.
	ActionUpdateRemote ActionType = "update_remote"
	// ActionDeleteRemote deletes a remote record that no longer exists locally.
	ActionDeleteRemote ActionType = "delete_remote"
	// ActionCreateRemote creates a remote record for a local-only record.
	ActionCreateRemote ActionType = "create_remote"
)

// Action represents a planned remote mutation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the record id.
	Key int64 `json:"key"`

	// URL is the endpoint the call is sent to.
	URL string `json:"url"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`

	// Payload is the body of create and update calls.
	Payload any `json:"payload,omitempty"`
}

// ReconcilePlan contains the planned actions for one kind.
type ReconcilePlan struct {
	// Kind is the adapter name the plan was built for.
	Kind string `json:"kind"`

	// Actions contains planned mutations: updates and deletes in remote order, then creates.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a reconcile plan.
type PlanSummary struct {
	// RemoteItems is the size of the remote collection.
	RemoteItems int `json:"remote_items"`

	// LocalMatched counts remote ids that also exist locally.
	LocalMatched int `json:"local_matched"`

	// InSync counts matched records with equal projections.
	InSync int `json:"in_sync"`

	// Updates counts planned update actions.
	Updates int `json:"updates"`

	// Deletes counts planned delete actions.
	Deletes int `json:"deletes"`

	// Creates counts planned create actions.
	Creates int `json:"creates"`
}

// ReconcileOptions controls how a plan is applied.
type ReconcileOptions struct {
	// DryRun prevents any remote call if true.
	DryRun bool
}

// SideEffectWarning records a remote call that completed with an unexpected status.
// It is not an error: the divergence is picked up again by the next run.
type SideEffectWarning struct {
	Action ActionType `json:"action"`
	Key    int64      `json:"key"`
	URL    string     `json:"url"`
	Status int        `json:"status"`
}

// ApplyResult reports the outcome of applying a plan.
type ApplyResult struct {
	// Succeeded counts calls answered with the expected status.
	Succeeded int `json:"succeeded"`

	// Warnings lists calls answered with any other status.
	Warnings []SideEffectWarning `json:"warnings"`

	// DryRun is true when no call was issued.
	DryRun bool `json:"dry_run"`

	// Duration is the wall time spent issuing calls.
	Duration time.Duration `json:"duration"`
}
