package posgrest

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// repository is a generic GORM-based repository implementation.
// It provides the store operations for any entity type T keyed by a string id.
type repository[T any] struct {
	db       *gorm.DB
	preloads []string
}

// New creates a new generic repository instance for type T.
// Every read preloads the listed associations; writes never touch them.
func New[T any](db *gorm.DB, preloads ...string) *repository[T] {
	return &repository[T]{
		db:       db,
		preloads: preloads,
	}
}

func (r *repository[T]) query(ctx context.Context) *gorm.DB {
	tx := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		tx = tx.Preload(p)
	}
	return tx
}

// Create inserts a new entity into the database.
func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error
}

// GetAll retrieves all entities of type T from the database.
func (r *repository[T]) GetAll(ctx context.Context) ([]T, error) {
	entities := []T{}
	if err := r.query(ctx).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// GetByID retrieves a single entity by its ID.
// It returns gorm.ErrRecordNotFound when no row matches.
func (r *repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var entity T
	if err := r.query(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// GetBy retrieves entities matching a condition such as "email = ?".
func (r *repository[T]) GetBy(ctx context.Context, condition string, value interface{}) ([]T, error) {
	entities := []T{}
	if err := r.query(ctx).Where(condition, value).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Exists reports whether a row with the given ID is present.
func (r *repository[T]) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update overwrites every column of the entity identified by ID, zero values
// included. The primary key and creation time are left as stored.
func (r *repository[T]) Update(ctx context.Context, entity *T, id string) error {
	return r.db.WithContext(ctx).
		Select("*").
		Omit(clause.Associations, "id", "created_at").
		Where("id = ?", id).
		Updates(entity).Error
}

// Delete removes an entity by its ID.
func (r *repository[T]) Delete(ctx context.Context, id string) error {
	var entity T
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity).Error
}
