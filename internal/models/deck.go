package models

import "time"

// Deck is a user-owned collection of flashcards. The owner is fixed at
// creation time and never reassigned.
type Deck struct {
	ID          int64       `json:"id" gorm:"primaryKey"`
	UserID      int64       `json:"usuario_id" gorm:"column:usuario_id;index;not null"`
	Title       string      `json:"titulo" gorm:"column:titulo;size:255;not null"`
	Description *string     `json:"descricao" gorm:"column:descricao;size:500"`
	CreatedAt   time.Time   `json:"criado_em" gorm:"column:criado_em"`
	Flashcards  []Flashcard `json:"flashcards,omitempty" gorm:"foreignKey:DeckID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name for the Deck model.
func (Deck) TableName() string {
	return "decks"
}
