// Package reconcile provides a generic engine that reconciles a remote system of
// record with the local store, one record kind at a time.
//
// The local store is the source of truth for content; the engine only ever
// writes to the remote side.
//
// # Architecture
//
// 1. Adapter: kind-specific logic to list the remote collection, load local
// records by id set, compare mirrored fields and build payloads and URLs.
//
// 2. Plan: ReconcileWithPlan indexes both sides by id and turns every divergence
// into an Action. A remote id missing locally becomes a delete, a matched record
// with a different projection becomes an update, a local-only record becomes a
// create. Identical records produce nothing, so a second run over unchanged data
// is empty.
//
// 3. Apply: ApplyPlan issues the updates and deletes concurrently and joins them,
// then does the same for the creates. Unexpected statuses are collected as
// SideEffectWarning values and never abort a batch; transport errors do.
//
// # Usage Example
//
//	spec := &reconcile.Spec{Adapter: postAdapter}
//
//	plan, err := reconcile.ReconcileWithPlan(ctx, spec, client)
//	result, err := reconcile.ApplyPlan(ctx, spec, client, plan, reconcile.ReconcileOptions{})
//
//	// or both at once
//	outcome, err := reconcile.Reconcile(ctx, spec, client, opts)
package reconcile
