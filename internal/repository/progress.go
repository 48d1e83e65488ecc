package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/henrymzs/estudeAI/internal/models"
)

// ProgressRepository defines the interface for study record operations.
type ProgressRepository interface {
	Create(ctx context.Context, record *models.StudyRecord) error
	CountByUser(ctx context.Context, userID int64) (int64, error)
}

type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository creates a new ProgressRepository instance.
func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Create(ctx context.Context, record *models.StudyRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create study record: %w", err)
	}
	return nil
}

func (r *progressRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.StudyRecord{}).
		Where("usuario_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count study records for user %d: %w", userID, err)
	}
	return count, nil
}
