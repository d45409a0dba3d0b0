// Package reconcile binds the generic reconcile engine to posts and comments.
//
// PostAdapter and CommentAdapter read the local side through the blog store and
// the remote side through the flat posts and comments collections. Reconciler runs
// them in order, posts first, with a new remote client per kind.
package reconcile
