package service

import (
	"context"

	"github.com/henrymzs/estudeAI/internal/repository"
)

// StatsResponse aggregates the caller's study numbers.
type StatsResponse struct {
	TotalDecks        int64 `json:"total_decks"`
	TotalCards        int64 `json:"total_cards"`
	TotalCardsStudied int64 `json:"total_cards_studied"`
}

// StatsService computes per-user aggregate counts.
type StatsService interface {
	Stats(ctx context.Context, userID int64) (*StatsResponse, error)
}

type statsService struct {
	deckRepo     repository.DeckRepository
	cardRepo     repository.FlashcardRepository
	progressRepo repository.ProgressRepository
}

// NewStatsService creates a new StatsService instance.
func NewStatsService(deckRepo repository.DeckRepository, cardRepo repository.FlashcardRepository, progressRepo repository.ProgressRepository) StatsService {
	return &statsService{
		deckRepo:     deckRepo,
		cardRepo:     cardRepo,
		progressRepo: progressRepo,
	}
}

func (s *statsService) Stats(ctx context.Context, userID int64) (*StatsResponse, error) {
	decks, err := s.deckRepo.CountByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	cards, err := s.cardRepo.CountByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	studied, err := s.progressRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &StatsResponse{
		TotalDecks:        decks,
		TotalCards:        cards,
		TotalCardsStudied: studied,
	}, nil
}
