package reconcile

import (
	"context"

	"blog-sync/core/remote"
)

// Adapter defines the interface for kind-specific reconciliation logic.
// Each adapter implements how to load, index, compare and address records of one
// kind (e.g., posts, comments).
type Adapter interface {
	// Name returns the unique name of this adapter (e.g., "post", "comment").
	Name() string

	// CollectionURL is the remote list/create endpoint of the kind.
	CollectionURL() string

	// ItemURL is the remote update/delete endpoint of one record.
	ItemURL(id int64) string

	// LoadRemote lists the full remote collection in the order the API returns it.
	// Any error aborts the reconciliation of the kind.
	LoadRemote(ctx context.Context, client remote.Client) ([]RemoteItem, error)

	// ExtractRemoteKey returns the id of a remote item.
	ExtractRemoteKey(item RemoteItem) (int64, error)

	// LoadLocalIndex loads the local records whose id is in ids, indexed by id.
	LoadLocalIndex(ctx context.Context, ids []int64) (map[int64]LocalItem, error)

	// LoadLocalOnly loads the local records whose id is not in ids.
	LoadLocalOnly(ctx context.Context, ids []int64) ([]LocalItem, error)

	// ExtractLocalKey returns the id of a local record.
	ExtractLocalKey(item LocalItem) int64

	// CompareFields returns the name of the first mirrored field whose local value
	// differs from the remote one, or "" when the record is in sync.
	CompareFields(local LocalItem, remote RemoteItem) (string, error)

	// Payload returns the body sent on create and update: the full local projection.
	Payload(local LocalItem) any
}
