package reconcile

import (
	"context"
	"fmt"

	"blog-sync/core/reconcile"
	"blog-sync/core/remote"
	"blog-sync/feature/blog/models"
	"blog-sync/feature/blog/store"
)

// PostAdapter implements the reconcile.Adapter interface for posts.
type PostAdapter struct {
	store     *store.Store
	endpoints models.Endpoints
}

// NewPostAdapter creates a post adapter over s.
func NewPostAdapter(s *store.Store, endpoints models.Endpoints) *PostAdapter {
	return &PostAdapter{store: s, endpoints: endpoints}
}

// Name returns the unique name of this adapter.
func (a *PostAdapter) Name() string {
	return string(models.KindPost)
}

func (a *PostAdapter) CollectionURL() string {
	return a.endpoints.CollectionURL(models.KindPost)
}

func (a *PostAdapter) ItemURL(id int64) string {
	return a.endpoints.ItemURL(models.KindPost, id)
}

// LoadRemote lists every remote post.
func (a *PostAdapter) LoadRemote(ctx context.Context, client remote.Client) ([]reconcile.RemoteItem, error) {
	var posts []models.RemotePost
	if err := client.List(ctx, a.CollectionURL(), &posts); err != nil {
		return nil, fmt.Errorf("failed to list remote posts: %w", err)
	}

	items := make([]reconcile.RemoteItem, len(posts))
	for i, p := range posts {
		items[i] = p
	}
	return items, nil
}

func (a *PostAdapter) ExtractRemoteKey(item reconcile.RemoteItem) (int64, error) {
	return item.(models.RemotePost).Key()
}

func (a *PostAdapter) LoadLocalIndex(ctx context.Context, ids []int64) (map[int64]reconcile.LocalItem, error) {
	posts, err := store.FilterByIDs[models.Post](ctx, a.store, ids)
	if err != nil {
		return nil, err
	}

	index := make(map[int64]reconcile.LocalItem, len(posts))
	for id, p := range posts {
		index[id] = p
	}
	return index, nil
}

func (a *PostAdapter) LoadLocalOnly(ctx context.Context, ids []int64) ([]reconcile.LocalItem, error) {
	posts, err := store.ExcludeIDs[models.Post](ctx, a.store, ids)
	if err != nil {
		return nil, err
	}
	return toLocalItems(posts), nil
}

func (a *PostAdapter) ExtractLocalKey(item reconcile.LocalItem) int64 {
	return item.(models.Post).ID
}

// CompareFields compares userId, title and body in that order.
func (a *PostAdapter) CompareFields(local reconcile.LocalItem, item reconcile.RemoteItem) (string, error) {
	remoteProj, err := item.(models.RemotePost).Projection()
	if err != nil {
		return "", err
	}
	return local.(models.Post).Projection().FirstDiff(remoteProj), nil
}

func (a *PostAdapter) Payload(local reconcile.LocalItem) any {
	return local.(models.Post).Projection()
}

// CommentAdapter implements the reconcile.Adapter interface for comments.
// Remote comments are listed through the flat collection, which carries postId.
type CommentAdapter struct {
	store     *store.Store
	endpoints models.Endpoints
}

// NewCommentAdapter creates a comment adapter over s.
func NewCommentAdapter(s *store.Store, endpoints models.Endpoints) *CommentAdapter {
	return &CommentAdapter{store: s, endpoints: endpoints}
}

// Name returns the unique name of this adapter.
func (a *CommentAdapter) Name() string {
	return string(models.KindComment)
}

func (a *CommentAdapter) CollectionURL() string {
	return a.endpoints.CollectionURL(models.KindComment)
}

func (a *CommentAdapter) ItemURL(id int64) string {
	return a.endpoints.ItemURL(models.KindComment, id)
}

// LoadRemote lists every remote comment.
func (a *CommentAdapter) LoadRemote(ctx context.Context, client remote.Client) ([]reconcile.RemoteItem, error) {
	var comments []models.RemoteComment
	if err := client.List(ctx, a.CollectionURL(), &comments); err != nil {
		return nil, fmt.Errorf("failed to list remote comments: %w", err)
	}

	items := make([]reconcile.RemoteItem, len(comments))
	for i, c := range comments {
		items[i] = c
	}
	return items, nil
}

func (a *CommentAdapter) ExtractRemoteKey(item reconcile.RemoteItem) (int64, error) {
	return item.(models.RemoteComment).Key()
}

func (a *CommentAdapter) LoadLocalIndex(ctx context.Context, ids []int64) (map[int64]reconcile.LocalItem, error) {
	comments, err := store.FilterByIDs[models.Comment](ctx, a.store, ids)
	if err != nil {
		return nil, err
	}

	index := make(map[int64]reconcile.LocalItem, len(comments))
	for id, c := range comments {
		index[id] = c
	}
	return index, nil
}

func (a *CommentAdapter) LoadLocalOnly(ctx context.Context, ids []int64) ([]reconcile.LocalItem, error) {
	comments, err := store.ExcludeIDs[models.Comment](ctx, a.store, ids)
	if err != nil {
		return nil, err
	}
	return toLocalItems(comments), nil
}

func (a *CommentAdapter) ExtractLocalKey(item reconcile.LocalItem) int64 {
	return item.(models.Comment).ID
}

// CompareFields compares postId, name, email and body in that order.
func (a *CommentAdapter) CompareFields(local reconcile.LocalItem, item reconcile.RemoteItem) (string, error) {
	remoteProj, err := item.(models.RemoteComment).Projection()
	if err != nil {
		return "", err
	}
	return local.(models.Comment).Projection().FirstDiff(remoteProj), nil
}

func (a *CommentAdapter) Payload(local reconcile.LocalItem) any {
	return local.(models.Comment).Projection()
}

func toLocalItems[T models.Record](records []T) []reconcile.LocalItem {
	items := make([]reconcile.LocalItem, len(records))
	for i, r := range records {
		items[i] = r
	}
	return items
}
