package service

import (
	"context"

	"github.com/henrymzs/estudeAI/internal/models"
	"github.com/henrymzs/estudeAI/internal/repository"
)

// FlashcardPatch carries a partial update; nil fields are left untouched.
type FlashcardPatch struct {
	Question *string `json:"pergunta"`
	Answer   *string `json:"resposta"`
}

// FlashcardService handles flashcard operations, ownership-checked
// transitively through the parent deck.
type FlashcardService interface {
	Create(ctx context.Context, ownerID, deckID int64, question, answer string) (*models.Flashcard, error)
	ListByDeck(ctx context.Context, ownerID, deckID int64) ([]models.Flashcard, error)
	ListAll(ctx context.Context, ownerID int64) ([]models.Flashcard, error)
	Get(ctx context.Context, ownerID, cardID int64) (*models.Flashcard, error)
	Update(ctx context.Context, ownerID, cardID int64, patch FlashcardPatch) (*models.Flashcard, error)
	Delete(ctx context.Context, ownerID, cardID int64) error
}

type flashcardService struct {
	cardRepo repository.FlashcardRepository
	deckRepo repository.DeckRepository
}

// NewFlashcardService creates a new FlashcardService instance.
func NewFlashcardService(cardRepo repository.FlashcardRepository, deckRepo repository.DeckRepository) FlashcardService {
	return &flashcardService{
		cardRepo: cardRepo,
		deckRepo: deckRepo,
	}
}

func (s *flashcardService) Create(ctx context.Context, ownerID, deckID int64, question, answer string) (*models.Flashcard, error) {
	// The target deck must pass the ownership check before anything is
	// persisted.
	if _, err := s.deckRepo.FindForOwner(ctx, deckID, ownerID); err != nil {
		return nil, asNotFound(err)
	}

	card := &models.Flashcard{
		DeckID:   deckID,
		Question: question,
		Answer:   answer,
	}
	if err := s.cardRepo.Create(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *flashcardService) ListByDeck(ctx context.Context, ownerID, deckID int64) ([]models.Flashcard, error) {
	if _, err := s.deckRepo.FindForOwner(ctx, deckID, ownerID); err != nil {
		return nil, asNotFound(err)
	}
	return s.cardRepo.FindByDeck(ctx, deckID)
}

func (s *flashcardService) ListAll(ctx context.Context, ownerID int64) ([]models.Flashcard, error) {
	return s.cardRepo.FindAllByOwner(ctx, ownerID)
}

func (s *flashcardService) Get(ctx context.Context, ownerID, cardID int64) (*models.Flashcard, error) {
	card, err := s.cardRepo.FindForOwner(ctx, cardID, ownerID)
	if err != nil {
		return nil, asNotFound(err)
	}
	return card, nil
}

func (s *flashcardService) Update(ctx context.Context, ownerID, cardID int64, patch FlashcardPatch) (*models.Flashcard, error) {
	card, err := s.cardRepo.FindForOwner(ctx, cardID, ownerID)
	if err != nil {
		return nil, asNotFound(err)
	}

	if patch.Question != nil {
		card.Question = *patch.Question
	}
	if patch.Answer != nil {
		card.Answer = *patch.Answer
	}

	if err := s.cardRepo.Update(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *flashcardService) Delete(ctx context.Context, ownerID, cardID int64) error {
	card, err := s.cardRepo.FindForOwner(ctx, cardID, ownerID)
	if err != nil {
		return asNotFound(err)
	}
	return s.cardRepo.Delete(ctx, card)
}
