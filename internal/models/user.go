// Package models contains data models for the EstudeAI API.
package models

import "time"

// User represents a registered account. The password hash never leaves
// the service layer; JSON serialization skips it.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Name         string    `json:"nome" gorm:"column:nome;size:120;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"column:senha;size:255;not null"`
	CreatedAt    time.Time `json:"criado_em" gorm:"column:criado_em"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "usuarios"
}
