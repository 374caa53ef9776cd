package repository

import (
	"eduflow_backend/internal/model"

	"gorm.io/gorm"
)

type ChatRepository struct {
	DB *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{DB: db}
}

func (r *ChatRepository) Save(entry *model.ChatHistory) error {
	return r.DB.Create(entry).Error
}

// FindBySession returns one session's turns in chronological order, capped at
// limit entries.
func (r *ChatRepository) FindBySession(userID uint, sessionID string, limit int) ([]model.ChatHistory, error) {
	var history []model.ChatHistory
	err := r.DB.
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		Order("created_at ASC").
		Limit(limit).
		Find(&history).Error
	return history, err
}

// ListSessions returns the latest entry per session for the user's history
// sidebar.
func (r *ChatRepository) ListSessions(userID uint) ([]model.ChatHistory, error) {
	var latest []model.ChatHistory
	sub := r.DB.Model(&model.ChatHistory{}).
		Select("MAX(id)").
		Where("user_id = ?", userID).
		Group("session_id")
	err := r.DB.
		Where("id IN (?)", sub).
		Order("created_at DESC").
		Find(&latest).Error
	return latest, err
}

func (r *ChatRepository) DeleteSession(userID uint, sessionID string) error {
	return r.DB.
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		Delete(&model.ChatHistory{}).Error
}
