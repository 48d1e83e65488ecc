package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/henrymzs/estudeAI/internal/models"
	"github.com/henrymzs/estudeAI/internal/repository"
)

// DeckPatch carries a partial update; nil fields are left untouched.
type DeckPatch struct {
	Title       *string `json:"titulo"`
	Description *string `json:"descricao"`
}

// DeckService handles ownership-scoped deck operations.
type DeckService interface {
	Create(ctx context.Context, ownerID int64, title string, description *string) (*models.Deck, error)
	List(ctx context.Context, ownerID int64) ([]models.Deck, error)
	Get(ctx context.Context, ownerID, deckID int64) (*models.Deck, error)
	Update(ctx context.Context, ownerID, deckID int64, patch DeckPatch) (*models.Deck, error)
	Delete(ctx context.Context, ownerID, deckID int64) error
}

type deckService struct {
	deckRepo repository.DeckRepository
}

// NewDeckService creates a new DeckService instance.
func NewDeckService(deckRepo repository.DeckRepository) DeckService {
	return &deckService{deckRepo: deckRepo}
}

func (s *deckService) Create(ctx context.Context, ownerID int64, title string, description *string) (*models.Deck, error) {
	// The owner is always the authenticated user, never client-supplied.
	deck := &models.Deck{
		UserID:      ownerID,
		Title:       title,
		Description: description,
	}
	if err := s.deckRepo.Create(ctx, deck); err != nil {
		return nil, err
	}
	return deck, nil
}

func (s *deckService) List(ctx context.Context, ownerID int64) ([]models.Deck, error) {
	return s.deckRepo.FindByOwner(ctx, ownerID)
}

func (s *deckService) Get(ctx context.Context, ownerID, deckID int64) (*models.Deck, error) {
	deck, err := s.deckRepo.FindWithCardsForOwner(ctx, deckID, ownerID)
	if err != nil {
		return nil, asNotFound(err)
	}
	return deck, nil
}

func (s *deckService) Update(ctx context.Context, ownerID, deckID int64, patch DeckPatch) (*models.Deck, error) {
	deck, err := s.deckRepo.FindForOwner(ctx, deckID, ownerID)
	if err != nil {
		return nil, asNotFound(err)
	}

	if patch.Title != nil {
		deck.Title = *patch.Title
	}
	if patch.Description != nil {
		deck.Description = patch.Description
	}

	if err := s.deckRepo.Update(ctx, deck); err != nil {
		return nil, err
	}
	return deck, nil
}

func (s *deckService) Delete(ctx context.Context, ownerID, deckID int64) error {
	deck, err := s.deckRepo.FindForOwner(ctx, deckID, ownerID)
	if err != nil {
		return asNotFound(err)
	}
	return s.deckRepo.DeleteCascade(ctx, deck)
}

// asNotFound collapses missing and not-owned lookups into ErrNotFound so
// the HTTP layer cannot leak the existence of other users' resources.
func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("lookup failed: %w", err)
}
