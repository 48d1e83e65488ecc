package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/henrymzs/estudeAI/internal/models"
)

// DeckRepository defines the interface for deck data operations.
//
// Every lookup that takes an ownerID is the authorization predicate: a deck
// that exists but belongs to someone else behaves exactly like a deck that
// does not exist (gorm.ErrRecordNotFound).
type DeckRepository interface {
	Create(ctx context.Context, deck *models.Deck) error
	FindByOwner(ctx context.Context, ownerID int64) ([]models.Deck, error)
	FindForOwner(ctx context.Context, id, ownerID int64) (*models.Deck, error)
	FindWithCardsForOwner(ctx context.Context, id, ownerID int64) (*models.Deck, error)
	Update(ctx context.Context, deck *models.Deck) error
	DeleteCascade(ctx context.Context, deck *models.Deck) error
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)
}

type deckRepository struct {
	db *gorm.DB
}

// NewDeckRepository creates a new DeckRepository instance.
func NewDeckRepository(db *gorm.DB) DeckRepository {
	return &deckRepository{db: db}
}

func (r *deckRepository) Create(ctx context.Context, deck *models.Deck) error {
	if err := r.db.WithContext(ctx).Create(deck).Error; err != nil {
		return fmt.Errorf("failed to create deck: %w", err)
	}
	return nil
}

func (r *deckRepository) FindByOwner(ctx context.Context, ownerID int64) ([]models.Deck, error) {
	decks := []models.Deck{}
	err := r.db.WithContext(ctx).Where("usuario_id = ?", ownerID).Find(&decks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list decks for user %d: %w", ownerID, err)
	}
	return decks, nil
}

func (r *deckRepository) FindForOwner(ctx context.Context, id, ownerID int64) (*models.Deck, error) {
	var deck models.Deck
	err := r.db.WithContext(ctx).
		Where("id = ? AND usuario_id = ?", id, ownerID).
		First(&deck).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find deck %d: %w", id, err)
	}
	return &deck, nil
}

func (r *deckRepository) FindWithCardsForOwner(ctx context.Context, id, ownerID int64) (*models.Deck, error) {
	var deck models.Deck
	err := r.db.WithContext(ctx).
		Preload("Flashcards").
		Where("id = ? AND usuario_id = ?", id, ownerID).
		First(&deck).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find deck %d: %w", id, err)
	}
	return &deck, nil
}

func (r *deckRepository) Update(ctx context.Context, deck *models.Deck) error {
	if err := r.db.WithContext(ctx).Save(deck).Error; err != nil {
		return fmt.Errorf("failed to update deck %d: %w", deck.ID, err)
	}
	return nil
}

// DeleteCascade removes the deck and all of its flashcards in a single
// transaction; either both succeed or neither is applied.
func (r *deckRepository) DeleteCascade(ctx context.Context, deck *models.Deck) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("deck_id = ?", deck.ID).Delete(&models.Flashcard{}).Error; err != nil {
			return err
		}
		return tx.Delete(deck).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete deck %d: %w", deck.ID, err)
	}
	return nil
}

func (r *deckRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Deck{}).
		Where("usuario_id = ?", ownerID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count decks for user %d: %w", ownerID, err)
	}
	return count, nil
}
