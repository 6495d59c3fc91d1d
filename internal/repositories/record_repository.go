package repositories

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrInvalidSortField = errors.New("invalid sort field")
	ErrEmptyUpdate      = errors.New("update contains no fields")
)

// recordRepository stores one kind of record in its own table.
type recordRepository struct {
	db   *gorm.DB
	kind models.Kind
}

// NewRecordRepository creates a repository over the table that holds kind.
func NewRecordRepository(db *gorm.DB, kind models.Kind) (RecordRepositoryInterface, error) {
	if !kind.IsValid() {
		return nil, models.ErrInvalidKind
	}
	return &recordRepository{db: db, kind: kind}, nil
}

func (r *recordRepository) Kind() models.Kind {
	return r.kind
}

func (r *recordRepository) table(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.kind.TableName())
}

// List returns the user's records. See models.RecordFilters for the ordering and range rules.
func (r *recordRepository) List(ctx context.Context, filters models.RecordFilters) ([]models.Record, error) {
	if filters.SortBy != "" && !models.IsValidSortField(filters.SortBy) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSortField, filters.SortBy)
	}

	query := r.table(ctx).Where("user_id = ?", filters.UserID)

	if filters.HasDateRange() {
		query = query.Where("date >= ? AND date <= ?",
			models.NormalizeDate(*filters.StartDate),
			models.NormalizeDate(*filters.EndDate))
	}

	query = query.Order(filters.OrderClause())

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	records := []models.Record{}
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.kind.TableName(), err)
	}

	return records, nil
}

func (r *recordRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Record, error) {
	var record models.Record
	if err := r.table(ctx).Where("id = ? AND user_id = ?", id, userID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", r.kind, err)
	}
	return &record, nil
}

func (r *recordRepository) Create(ctx context.Context, record *models.Record) error {
	if record == nil {
		return errors.New("record cannot be nil")
	}

	if err := r.table(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", r.kind, err)
	}
	return nil
}

// Update applies a partial update and returns the stored result. Last write wins.
func (r *recordRepository) Update(ctx context.Context, userID, id uuid.UUID, update models.RecordUpdate) (*models.Record, error) {
	if update.IsEmpty() {
		return nil, ErrEmptyUpdate
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}

	cols := update.Columns()
	cols["updated_at"] = r.db.NowFunc()

	result := r.table(ctx).Where("id = ? AND user_id = ?", id, userID).Updates(cols)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update %s: %w", r.kind, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}

	return r.GetByID(ctx, userID, id)
}

func (r *recordRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.table(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Record{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", r.kind, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
