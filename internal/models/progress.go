package models

import "time"

// StudyRecord marks that a user studied a flashcard. Aggregated by the
// stats endpoint, never updated after creation.
type StudyRecord struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	UserID      int64     `json:"usuario_id" gorm:"column:usuario_id;index;not null"`
	FlashcardID int64     `json:"flashcard_id" gorm:"column:flashcard_id;index;not null"`
	StudiedAt   time.Time `json:"estudado_em" gorm:"column:estudado_em"`
}

// TableName returns the database table name for the StudyRecord model.
func (StudyRecord) TableName() string {
	return "progresso"
}
