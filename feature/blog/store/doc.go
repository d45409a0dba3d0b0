// Package store persists posts and comments through GORM.
//
// It is the persistence interface the sync engine consumes:
//
//	ExistsAny(kind)            any record of the kind stored?
//	BulkInsert(records)        batched insert keeping external ids
//	FilterByIDs(ids)           id -> record for records inside the id set
//	ExcludeIDs(ids)            records outside the id set
//	ResyncSequence(kind)       realign the id sequence after explicit-id inserts
//	Atomic(fn)                 one transaction, commit on nil, rollback otherwise
//
// Schema management is not this package's concern; Migrate only exists so a fresh
// database (tests, local SQLite) can be brought up without external tooling.
package store
