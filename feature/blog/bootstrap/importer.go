package bootstrap

import (
	"context"
	"fmt"
	"time"

	"blog-sync/core/remote"
	"blog-sync/core/utils"
	"blog-sync/feature/blog/models"
	"blog-sync/feature/blog/store"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultChunkSize is the number of posts whose comments are fetched concurrently.
const DefaultChunkSize = 20

// Report summarizes a completed import.
type Report struct {
	Posts    int           `json:"posts"`
	Comments int           `json:"comments"`
	Chunks   int           `json:"chunks"`
	Duration time.Duration `json:"duration"`
}

// Importer performs the one-time import of the remote posts and comments.
type Importer struct {
	store     *store.Store
	client    remote.Client
	endpoints models.Endpoints
	chunkSize int
	logger    *zap.Logger
}

// NewImporter creates an importer. A chunkSize below 1 uses DefaultChunkSize.
func NewImporter(s *store.Store, client remote.Client, endpoints models.Endpoints, chunkSize int, logger *zap.Logger) *Importer {
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}
	return &Importer{
		store:     s,
		client:    client,
		endpoints: endpoints,
		chunkSize: chunkSize,
		logger:    logger,
	}
}

// Run imports every remote post and its comments into an empty store.
//
// Posts are listed once. Their comments are fetched chunk by chunk, every post
// of a chunk concurrently, and all records are persisted in one transaction:
// any failure leaves the store as it was.
func (i *Importer) Run(ctx context.Context) (*Report, error) {
	start := time.Now()

	if err := i.checkEmpty(ctx); err != nil {
		return nil, err
	}

	posts, err := i.fetchPosts(ctx)
	if err != nil {
		return nil, err
	}

	chunks := utils.Chunk(posts, i.chunkSize)
	report := &Report{Posts: len(posts), Chunks: len(chunks)}

	i.logger.Info("Importing remote posts",
		zap.Int("posts", len(posts)),
		zap.Int("chunks", len(chunks)),
		zap.Int("chunk_size", i.chunkSize),
	)

	err = i.store.Atomic(ctx, func(tx *store.Store) error {
		if err := store.BulkInsert(ctx, tx, posts); err != nil {
			return err
		}

		var comments []models.Comment
		for n, chunk := range chunks {
			fetched, err := i.fetchChunkComments(ctx, chunk)
			if err != nil {
				return fmt.Errorf("chunk %d/%d: %w", n+1, len(chunks), err)
			}
			comments = append(comments, fetched...)
			i.logger.Debug("Fetched comments for chunk",
				zap.Int("chunk", n+1),
				zap.Int("posts", len(chunk)),
				zap.Int("comments", len(fetched)),
			)
		}

		if err := store.BulkInsert(ctx, tx, comments); err != nil {
			return err
		}
		report.Comments = len(comments)

		for _, kind := range models.Kinds() {
			if err := tx.ResyncSequence(ctx, kind); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("import rolled back: %w", err)
	}

	report.Duration = time.Since(start)
	i.logger.Info("Import completed",
		zap.Int("posts", report.Posts),
		zap.Int("comments", report.Comments),
		zap.Duration("duration", report.Duration),
	)

	return report, nil
}

// checkEmpty refuses to run when either table holds records.
func (i *Importer) checkEmpty(ctx context.Context) error {
	for _, kind := range models.Kinds() {
		exists, err := i.store.ExistsAny(ctx, kind)
		if err != nil {
			return err
		}
		if exists {
			return &PreconditionError{Kind: kind}
		}
	}
	return nil
}

// fetchPosts lists the remote posts and converts them to valid local records.
func (i *Importer) fetchPosts(ctx context.Context) ([]models.Post, error) {
	var remotePosts []models.RemotePost
	if err := i.client.List(ctx, i.endpoints.PostsURL, &remotePosts); err != nil {
		return nil, fmt.Errorf("failed to list remote posts: %w", err)
	}

	posts := make([]models.Post, 0, len(remotePosts))
	for _, rp := range remotePosts {
		post, err := rp.ToModel()
		if err != nil {
			return nil, err
		}
		if err := post.Validate(); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// fetchChunkComments fetches the comments of every post in chunk concurrently.
// The first failure cancels the remaining fetches of the chunk. Comments are
// returned in post order.
func (i *Importer) fetchChunkComments(ctx context.Context, chunk []models.Post) ([]models.Comment, error) {
	results := make([][]models.Comment, len(chunk))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.chunkSize)

	for idx, post := range chunk {
		g.Go(func() error {
			comments, err := i.fetchPostComments(gctx, post.ID)
			if err != nil {
				return err
			}
			results[idx] = comments
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var flat []models.Comment
	for _, comments := range results {
		flat = append(flat, comments...)
	}
	return flat, nil
}

// fetchPostComments lists the comments of one post. The post id is taken from
// the URL, not from the payload.
func (i *Importer) fetchPostComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	var remoteComments []models.RemoteComment
	if err := i.client.List(ctx, i.endpoints.CommentsForPost(postID), &remoteComments); err != nil {
		return nil, fmt.Errorf("failed to list comments of post %d: %w", postID, err)
	}

	comments := make([]models.Comment, 0, len(remoteComments))
	for _, rc := range remoteComments {
		comment, err := rc.ToModel(postID)
		if err != nil {
			return nil, err
		}
		if err := comment.Validate(); err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, nil
}
