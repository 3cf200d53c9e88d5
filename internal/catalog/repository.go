package catalog

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is the sentinel returned for an unknown record id. Services
// translate it into the resource-specific AppError.
var ErrNotFound = errors.New("record not found")

// Repository is the shared data access layer for all catalog tables. The
// tables are structurally independent but expose identical operations, so a
// single generic implementation is instantiated once per resource.
type Repository[T any] struct {
	db    *gorm.DB
	table string
}

func NewRepository[T any](db *gorm.DB, table string) *Repository[T] {
	return &Repository[T]{db: db, table: table}
}

// List returns one page of rows in insertion order plus the total row count.
// Count and fetch are two statements; a concurrent write between them may
// make the total drift from the page contents.
func (r *Repository[T]) List(page Page) ([]T, int64, error) {
	var total int64
	if err := r.db.Table(r.table).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]T, 0, page.Limit)
	err := r.db.Table(r.table).
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func (r *Repository[T]) GetByID(id int64) (*T, error) {
	var row T
	err := r.db.Table(r.table).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// Create inserts the row and backfills its generated id.
func (r *Repository[T]) Create(row *T) error {
	return r.db.Table(r.table).Create(row).Error
}

// Update is a full-row replace. Updating an absent id affects zero rows and
// reports ErrNotFound.
func (r *Repository[T]) Update(id int64, row *T) error {
	res := r.db.Table(r.table).Where("id = ?", id).Select("*").Omit("id").Updates(row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository[T]) Delete(id int64) error {
	var row T
	res := r.db.Table(r.table).Where("id = ?", id).Delete(&row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
