package model

import (
	"time"
)

// ChatHistory stores the AI assistant conversation per user, grouped by
// session so multi-turn context can be replayed.
type ChatHistory struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"index" json:"userId"`
	SessionID string    `gorm:"size:50;index" json:"sessionId"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	Source    string    `gorm:"size:20" json:"source"` // catalog or llm
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (ChatHistory) TableName() string {
	return "chat_histories"
}
