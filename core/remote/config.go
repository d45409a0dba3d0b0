package remote

// Config holds configuration for the remote system of record.
type Config struct {
	// PostsURL is the collection endpoint for posts.
	PostsURL string `mapstructure:"posts_url" default:"https://jsonplaceholder.typicode.com/posts"`
	// CommentsURL is the collection endpoint for comments.
	CommentsURL string `mapstructure:"comments_url" default:"https://jsonplaceholder.typicode.com/comments"`
	// CommentsByPostURL lists the comments of one post; {post_id} is substituted.
	CommentsByPostURL string `mapstructure:"comments_by_post_url" default:"https://jsonplaceholder.typicode.com/posts/{post_id}/comments"`
	// TimeoutSeconds bounds dialing, the TLS handshake and the wait for response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool `mapstructure:"insecure_skip_verify" default:"false"`
	// MaxInFlight caps concurrent create/update/delete calls per batch (0 = unbounded).
	MaxInFlight int `mapstructure:"max_in_flight" default:"0"`
}
