package store

import (
	"context"
	"fmt"

	"blog-sync/core/database"
	"blog-sync/feature/blog/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultBatchSize is the number of rows per INSERT when none is configured.
const DefaultBatchSize = 500

// Store is the persistence layer consumed by the sync engine.
// Record-typed operations are package functions because Go methods cannot be generic.
type Store struct {
	db        *gorm.DB
	batchSize int
}

// New creates a store over db. A batchSize below 1 uses DefaultBatchSize.
func New(db *gorm.DB, batchSize int) *Store {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}
	return &Store{db: db, batchSize: batchSize}
}

// DB returns the underlying connection or transaction.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Migrate creates or updates the posts and comments tables.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&models.Post{}, &models.Comment{}); err != nil {
		return fmt.Errorf("failed to migrate blog tables: %w", err)
	}
	return nil
}

// ExistsAny reports whether at least one record of kind is stored.
func (s *Store) ExistsAny(ctx context.Context, kind models.Kind) (bool, error) {
	table := models.TableFor(kind)
	if table == "" {
		return false, fmt.Errorf("unknown record kind %q", kind)
	}

	var ids []int64
	if err := s.db.WithContext(ctx).Table(table).Limit(1).Pluck("id", &ids).Error; err != nil {
		return false, fmt.Errorf("failed to check %s table: %w", table, err)
	}
	return len(ids) > 0, nil
}

// Count returns the number of stored records of kind.
func (s *Store) Count(ctx context.Context, kind models.Kind) (int64, error) {
	table := models.TableFor(kind)
	if table == "" {
		return 0, fmt.Errorf("unknown record kind %q", kind)
	}

	var n int64
	if err := s.db.WithContext(ctx).Table(table).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}

// ResyncSequence realigns the id sequence of kind's table after explicit-id inserts.
func (s *Store) ResyncSequence(ctx context.Context, kind models.Kind) error {
	table := models.TableFor(kind)
	if table == "" {
		return fmt.Errorf("unknown record kind %q", kind)
	}
	return database.ResyncSequence(ctx, s.db, table, "id")
}

// Atomic runs fn inside one transaction. The transaction commits when fn returns
// nil and rolls back when it returns an error or panics.
func (s *Store) Atomic(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx, batchSize: s.batchSize})
	})
}

// BulkInsert inserts records in batches, keeping their externally assigned ids.
func BulkInsert[T models.Record](ctx context.Context, s *Store, records []T) error {
	if len(records) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).
		Omit(clause.Associations).
		CreateInBatches(&records, s.batchSize).Error
	if err != nil {
		return fmt.Errorf("failed to insert %d %s records: %w", len(records), records[0].Kind(), err)
	}
	return nil
}

// FilterByIDs loads the records whose id is in ids, indexed by id.
func FilterByIDs[T models.Record](ctx context.Context, s *Store, ids []int64) (map[int64]T, error) {
	index := make(map[int64]T, len(ids))
	if len(ids) == 0 {
		return index, nil
	}

	var records []T
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load records by id: %w", err)
	}

	for _, r := range records {
		index[r.Key()] = r
	}
	return index, nil
}

// ExcludeIDs loads every record whose id is not in ids, ordered by id.
// An empty ids returns all records.
func ExcludeIDs[T models.Record](ctx context.Context, s *Store, ids []int64) ([]T, error) {
	query := s.db.WithContext(ctx).Order("id")
	if len(ids) > 0 {
		query = query.Where("id NOT IN ?", ids)
	}

	var records []T
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load records outside id set: %w", err)
	}
	return records, nil
}
