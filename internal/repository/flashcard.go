package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/henrymzs/estudeAI/internal/models"
)

// FlashcardRepository defines the interface for flashcard data operations.
// Ownership is always resolved transitively through the parent deck.
type FlashcardRepository interface {
	Create(ctx context.Context, card *models.Flashcard) error
	FindByDeck(ctx context.Context, deckID int64) ([]models.Flashcard, error)
	FindAllByOwner(ctx context.Context, ownerID int64) ([]models.Flashcard, error)
	FindForOwner(ctx context.Context, id, ownerID int64) (*models.Flashcard, error)
	Update(ctx context.Context, card *models.Flashcard) error
	Delete(ctx context.Context, card *models.Flashcard) error
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)
}

type flashcardRepository struct {
	db *gorm.DB
}

// NewFlashcardRepository creates a new FlashcardRepository instance.
func NewFlashcardRepository(db *gorm.DB) FlashcardRepository {
	return &flashcardRepository{db: db}
}

func (r *flashcardRepository) Create(ctx context.Context, card *models.Flashcard) error {
	if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
		return fmt.Errorf("failed to create flashcard: %w", err)
	}
	return nil
}

func (r *flashcardRepository) FindByDeck(ctx context.Context, deckID int64) ([]models.Flashcard, error) {
	cards := []models.Flashcard{}
	err := r.db.WithContext(ctx).Where("deck_id = ?", deckID).Find(&cards).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list flashcards for deck %d: %w", deckID, err)
	}
	return cards, nil
}

func (r *flashcardRepository) FindAllByOwner(ctx context.Context, ownerID int64) ([]models.Flashcard, error) {
	cards := []models.Flashcard{}
	err := r.db.WithContext(ctx).
		Joins("JOIN decks ON decks.id = flashcards.deck_id").
		Where("decks.usuario_id = ?", ownerID).
		Find(&cards).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list flashcards for user %d: %w", ownerID, err)
	}
	return cards, nil
}

func (r *flashcardRepository) FindForOwner(ctx context.Context, id, ownerID int64) (*models.Flashcard, error) {
	var card models.Flashcard
	err := r.db.WithContext(ctx).
		Joins("JOIN decks ON decks.id = flashcards.deck_id").
		Where("flashcards.id = ? AND decks.usuario_id = ?", id, ownerID).
		First(&card).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find flashcard %d: %w", id, err)
	}
	return &card, nil
}

func (r *flashcardRepository) Update(ctx context.Context, card *models.Flashcard) error {
	if err := r.db.WithContext(ctx).Save(card).Error; err != nil {
		return fmt.Errorf("failed to update flashcard %d: %w", card.ID, err)
	}
	return nil
}

func (r *flashcardRepository) Delete(ctx context.Context, card *models.Flashcard) error {
	if err := r.db.WithContext(ctx).Delete(card).Error; err != nil {
		return fmt.Errorf("failed to delete flashcard %d: %w", card.ID, err)
	}
	return nil
}

func (r *flashcardRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Flashcard{}).
		Joins("JOIN decks ON decks.id = flashcards.deck_id").
		Where("decks.usuario_id = ?", ownerID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count flashcards for user %d: %w", ownerID, err)
	}
	return count, nil
}
