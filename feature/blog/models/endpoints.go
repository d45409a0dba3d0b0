package models

import (
	"strconv"
	"strings"
)

// PostIDPlaceholder is substituted with a post id in Endpoints.CommentsByPostURL.
const PostIDPlaceholder = "{post_id}"

// Endpoints are the remote URLs of both kinds.
type Endpoints struct {
	PostsURL          string
	CommentsURL       string
	CommentsByPostURL string
}

// CollectionURL is the list/create URL of a kind.
func (e Endpoints) CollectionURL(kind Kind) string {
	if kind == KindComment {
		return e.CommentsURL
	}
	return e.PostsURL
}

// ItemURL is the update/delete URL of one record.
func (e Endpoints) ItemURL(kind Kind, id int64) string {
	return strings.TrimRight(e.CollectionURL(kind), "/") + "/" + strconv.FormatInt(id, 10)
}

// CommentsForPost is the URL listing the comments of one post.
func (e Endpoints) CommentsForPost(postID int64) string {
	return strings.ReplaceAll(e.CommentsByPostURL, PostIDPlaceholder, strconv.FormatInt(postID, 10))
}
