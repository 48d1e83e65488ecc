package models

import "time"

// Audit action types recorded by the service.
const (
	ActionLoginSuccess = "login_success"
	ActionLoginFailure = "login_failure"
	ActionRegister     = "register"
	ActionDeckDelete   = "deck_delete"
)

// ActionLog is an append-only audit record of security-relevant events.
type ActionLog struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Action    string    `json:"action" gorm:"size:64;not null;index"`
	UserID    *int64    `json:"user_id" gorm:"index"`
	Source    string    `json:"source" gorm:"size:64"`
	Detail    string    `json:"detail" gorm:"size:1024"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for the ActionLog model.
func (ActionLog) TableName() string {
	return "action_logs"
}
