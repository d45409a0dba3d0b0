package models

import "fmt"

// MissingFieldError reports a remote record without a key the sync engine requires.
type MissingFieldError struct {
	// Kind is the record kind being decoded.
	Kind Kind
	// Field is the JSON key that was absent.
	Field string
	// ID is the record id when it was present, 0 otherwise.
	ID int64
}

func (e *MissingFieldError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("remote %s %d is missing field %q", e.Kind, e.ID, e.Field)
	}
	return fmt.Sprintf("remote %s is missing field %q", e.Kind, e.Field)
}

// RemotePost is a post as returned by the remote API. Pointer fields let a
// missing key be told apart from a zero value.
type RemotePost struct {
	ID     *int64  `json:"id"`
	UserID *int64  `json:"userId"`
	Title  *string `json:"title"`
	Body   *string `json:"body"`
}

// Key returns the remote id.
func (r RemotePost) Key() (int64, error) {
	if r.ID == nil {
		return 0, &MissingFieldError{Kind: KindPost, Field: "id"}
	}
	return *r.ID, nil
}

// Projection returns the mirrored fields, failing on the first missing key.
func (r RemotePost) Projection() (PostProjection, error) {
	id, err := r.Key()
	if err != nil {
		return PostProjection{}, err
	}
	switch {
	case r.UserID == nil:
		return PostProjection{}, &MissingFieldError{Kind: KindPost, Field: "userId", ID: id}
	case r.Title == nil:
		return PostProjection{}, &MissingFieldError{Kind: KindPost, Field: "title", ID: id}
	case r.Body == nil:
		return PostProjection{}, &MissingFieldError{Kind: KindPost, Field: "body", ID: id}
	}
	return PostProjection{UserID: *r.UserID, Title: *r.Title, Body: *r.Body}, nil
}

// ToModel builds the local post, keeping the remote id.
func (r RemotePost) ToModel() (Post, error) {
	p, err := r.Projection()
	if err != nil {
		return Post{}, err
	}
	return Post{ID: *r.ID, UserID: p.UserID, Title: p.Title, Body: p.Body}, nil
}

// RemoteComment is a comment as returned by the remote API. PostID is absent
// when the comment was listed through its post's comments endpoint.
type RemoteComment struct {
	ID     *int64  `json:"id"`
	PostID *int64  `json:"postId"`
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Body   *string `json:"body"`
}

// Key returns the remote id.
func (r RemoteComment) Key() (int64, error) {
	if r.ID == nil {
		return 0, &MissingFieldError{Kind: KindComment, Field: "id"}
	}
	return *r.ID, nil
}

// Projection returns the mirrored fields, failing on the first missing key.
func (r RemoteComment) Projection() (CommentProjection, error) {
	id, err := r.Key()
	if err != nil {
		return CommentProjection{}, err
	}
	if r.PostID == nil {
		return CommentProjection{}, &MissingFieldError{Kind: KindComment, Field: "postId", ID: id}
	}
	name, email, body, err := r.content(id)
	if err != nil {
		return CommentProjection{}, err
	}
	return CommentProjection{PostID: *r.PostID, Name: name, Email: email, Body: body}, nil
}

// ToModel builds the local comment for postID, which the caller knows from the
// URL the comment was listed under.
func (r RemoteComment) ToModel(postID int64) (Comment, error) {
	id, err := r.Key()
	if err != nil {
		return Comment{}, err
	}
	name, email, body, err := r.content(id)
	if err != nil {
		return Comment{}, err
	}
	return Comment{ID: id, PostID: postID, Name: name, Email: email, Body: body}, nil
}

func (r RemoteComment) content(id int64) (name, email, body string, err error) {
	switch {
	case r.Name == nil:
		return "", "", "", &MissingFieldError{Kind: KindComment, Field: "name", ID: id}
	case r.Email == nil:
		return "", "", "", &MissingFieldError{Kind: KindComment, Field: "email", ID: id}
	case r.Body == nil:
		return "", "", "", &MissingFieldError{Kind: KindComment, Field: "body", ID: id}
	}
	return *r.Name, *r.Email, *r.Body, nil
}
