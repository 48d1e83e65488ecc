package service

import (
	"context"
	"time"

	"github.com/henrymzs/estudeAI/internal/models"
	"github.com/henrymzs/estudeAI/internal/repository"
)

// ProgressService records studied flashcards.
type ProgressService interface {
	RecordStudy(ctx context.Context, userID, flashcardID int64) (*models.StudyRecord, error)
}

type progressService struct {
	progressRepo repository.ProgressRepository
	cardRepo     repository.FlashcardRepository
}

// NewProgressService creates a new ProgressService instance.
func NewProgressService(progressRepo repository.ProgressRepository, cardRepo repository.FlashcardRepository) ProgressService {
	return &progressService{
		progressRepo: progressRepo,
		cardRepo:     cardRepo,
	}
}

func (s *progressService) RecordStudy(ctx context.Context, userID, flashcardID int64) (*models.StudyRecord, error) {
	// Studying is only allowed on cards in the caller's own decks.
	if _, err := s.cardRepo.FindForOwner(ctx, flashcardID, userID); err != nil {
		return nil, asNotFound(err)
	}

	record := &models.StudyRecord{
		UserID:      userID,
		FlashcardID: flashcardID,
		StudiedAt:   time.Now(),
	}
	if err := s.progressRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}
