package models

// PostProjection is the part of a post mirrored to and from the remote system.
// It is both the diff key and the create/update payload.
type PostProjection struct {
	UserID int64  `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// CommentProjection is the part of a comment mirrored to and from the remote system.
type CommentProjection struct {
	PostID int64  `json:"postId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

// Projection returns the mirrored fields of the post.
func (p Post) Projection() PostProjection {
	return PostProjection{UserID: p.UserID, Title: p.Title, Body: p.Body}
}

// Projection returns the mirrored fields of the comment.
func (c Comment) Projection() CommentProjection {
	return CommentProjection{PostID: c.PostID, Name: c.Name, Email: c.Email, Body: c.Body}
}

// FirstDiff returns the JSON name of the first field, in projection order,
// whose value differs from other. It returns "" when both are equal.
func (p PostProjection) FirstDiff(other PostProjection) string {
	switch {
	case p.UserID != other.UserID:
		return "userId"
	case p.Title != other.Title:
		return "title"
	case p.Body != other.Body:
		return "body"
	}
	return ""
}

// FirstDiff returns the JSON name of the first differing field, or "".
func (c CommentProjection) FirstDiff(other CommentProjection) string {
	switch {
	case c.PostID != other.PostID:
		return "postId"
	case c.Name != other.Name:
		return "name"
	case c.Email != other.Email:
		return "email"
	case c.Body != other.Body:
		return "body"
	}
	return ""
}

// Projection is implemented by both projection types.
type Projection[P any] interface {
	comparable
	FirstDiff(other P) string
}

// Compare reports whether the local projection diverges from the remote one.
func Compare[P Projection[P]](local, remote P) bool {
	return local.FirstDiff(remote) != ""
}
