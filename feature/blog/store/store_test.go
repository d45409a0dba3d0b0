package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"blog-sync/core/database"
	"blog-sync/feature/blog/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupTestStore creates a migrated in-memory SQLite store.
func setupTestStore(t *testing.T) *Store {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	s := New(db, 2)
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func seed(t *testing.T, s *Store) {
	ctx := context.Background()
	require.NoError(t, BulkInsert(ctx, s, []models.Post{
		{ID: 1, UserID: 1, Title: "T1", Body: "B1"},
		{ID: 2, UserID: 1, Title: "T2", Body: "B2"},
		{ID: 4, UserID: 2, Title: "T4", Body: "B4"},
	}))
	require.NoError(t, BulkInsert(ctx, s, []models.Comment{
		{ID: 10, PostID: 1, Name: "N", Email: "a@x.com", Body: "C"},
		{ID: 11, PostID: 1, Name: "N", Email: "b@x.com", Body: "C"},
		{ID: 20, PostID: 2, Name: "N", Email: "c@x.com", Body: "C"},
	}))
}

func TestStore_ExistsAnyAndCount(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	exists, err := s.ExistsAny(ctx, models.KindPost)
	require.NoError(t, err)
	assert.False(t, exists)

	seed(t, s)

	exists, err = s.ExistsAny(ctx, models.KindComment)
	require.NoError(t, err)
	assert.True(t, exists)

	n, err := s.Count(ctx, models.KindPost)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	_, err = s.ExistsAny(ctx, models.Kind("tag"))
	assert.Error(t, err)
}

func TestBulkInsert_PreservesIDs(t *testing.T) {
	s := setupTestStore(t)
	seed(t, s)

	var ids []int64
	require.NoError(t, s.DB().Model(&models.Post{}).Order("id").Pluck("id", &ids).Error)
	assert.Equal(t, []int64{1, 2, 4}, ids)

	assert.NoError(t, BulkInsert[models.Post](context.Background(), s, nil))
}

func TestBulkInsert_CommentRequiresPost(t *testing.T) {
	s := setupTestStore(t)

	err := BulkInsert(context.Background(), s, []models.Comment{
		{ID: 1, PostID: 999, Name: "N", Email: "a@x.com", Body: "C"},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "comment")
}

func TestFilterByIDs(t *testing.T) {
	s := setupTestStore(t)
	seed(t, s)
	ctx := context.Background()

	posts, err := FilterByIDs[models.Post](ctx, s, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, "T2", posts[2].Title)
	_, ok := posts[3]
	assert.False(t, ok)

	empty, err := FilterByIDs[models.Comment](ctx, s, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestExcludeIDs(t *testing.T) {
	s := setupTestStore(t)
	seed(t, s)
	ctx := context.Background()

	posts, err := ExcludeIDs[models.Post](ctx, s, []int64{1, 2, 3})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, int64(4), posts[0].ID)

	all, err := ExcludeIDs[models.Comment](ctx, s, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, int64(10), all[0].ID)
}

func TestAtomic_RollsBackOnError(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	boom := errors.New("comment fetch failed")

	err := s.Atomic(ctx, func(tx *Store) error {
		if err := BulkInsert(ctx, tx, []models.Post{{ID: 1, UserID: 1, Title: "T", Body: "B"}}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, err := s.Count(ctx, models.KindPost)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestAtomic_Commits(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	err := s.Atomic(ctx, func(tx *Store) error {
		if err := BulkInsert(ctx, tx, []models.Post{{ID: 1, UserID: 1, Title: "T", Body: "B"}}); err != nil {
			return err
		}
		if err := BulkInsert(ctx, tx, []models.Comment{{ID: 5, PostID: 1, Name: "N", Email: "a@x.com", Body: "C"}}); err != nil {
			return err
		}
		return tx.ResyncSequence(ctx, models.KindPost)
	})
	require.NoError(t, err)

	n, err := s.Count(ctx, models.KindComment)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestDeletingPostCascadesToComments(t *testing.T) {
	s := setupTestStore(t)
	seed(t, s)
	ctx := context.Background()

	require.NoError(t, s.DB().Delete(&models.Post{}, 1).Error)

	comments, err := ExcludeIDs[models.Comment](ctx, s, nil)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, int64(20), comments[0].ID)
}

func TestResyncSequence_Postgres(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	s := New(db, 0)

	for _, table := range []string{"posts", "comments"} {
		mock.ExpectExec(regexp.QuoteMeta(fmt.Sprintf(`pg_get_serial_sequence('"%s"', 'id')`, table))).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	require.NoError(t, s.ResyncSequence(context.Background(), models.KindPost))
	require.NoError(t, s.ResyncSequence(context.Background(), models.KindComment))
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.Error(t, s.ResyncSequence(context.Background(), models.Kind("tag")))
}
