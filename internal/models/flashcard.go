package models

import "time"

// Flashcard is a question/answer pair belonging to exactly one deck.
// Its effective owner is the owner of its deck.
type Flashcard struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	DeckID    int64     `json:"deck_id" gorm:"column:deck_id;index;not null"`
	Question  string    `json:"pergunta" gorm:"column:pergunta;size:500;not null"`
	Answer    string    `json:"resposta" gorm:"column:resposta;size:1000;not null"`
	CreatedAt time.Time `json:"criado_em" gorm:"column:criado_em"`
}

// TableName returns the database table name for the Flashcard model.
func (Flashcard) TableName() string {
	return "flashcards"
}
