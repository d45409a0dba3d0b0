// Package blog wires the blog sync jobs into the application.
//
// Service runs the bootstrap import and the synchronize reconciliation, keeps the
// last run of each, and archives run reports when a storage archive is configured.
// Handler exposes them under /sync:
//
//	POST /sync/bootstrap           import into an empty store
//	POST /sync/reconcile?dry_run=  push local changes to the remote API
//	GET  /sync/status              local counts and last runs
//	GET  /sync/reports/:run        archived reports
//
// Errors map to 409 when the store is not empty, 502 when the remote API failed
// or sent malformed records, and 500 otherwise.
package blog
