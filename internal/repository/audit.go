package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/henrymzs/estudeAI/internal/models"
)

// ActionLogRepository records audit events. Writes are best-effort from the
// caller's point of view; a failed audit write never fails the request.
type ActionLogRepository interface {
	Log(ctx context.Context, entry *models.ActionLog) error
}

type actionLogRepository struct {
	db *gorm.DB
}

// NewActionLogRepository creates a new ActionLogRepository instance.
func NewActionLogRepository(db *gorm.DB) ActionLogRepository {
	return &actionLogRepository{db: db}
}

func (r *actionLogRepository) Log(ctx context.Context, entry *models.ActionLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to write action log: %w", err)
	}
	return nil
}
