package service

import (
	"eduflow_backend/internal/model"
	"eduflow_backend/internal/repository"
	"fmt"
)

// ChatService backs the site's chat widget: it grounds answers in the course
// catalog, keeps per-session history for multi-turn context, and persists
// every turn.
type ChatService struct {
	ChatRepo   *repository.ChatRepository
	CourseRepo *repository.CourseRepository
	AI         *AIService
}

func NewChatService(chatRepo *repository.ChatRepository, courseRepo *repository.CourseRepository, ai *AIService) *ChatService {
	return &ChatService{
		ChatRepo:   chatRepo,
		CourseRepo: courseRepo,
		AI:         ai,
	}
}

const historyContextTurns = 10

type AskResponse struct {
	SessionID string `json:"sessionId"`
	Answer    string `json:"answer"`
	Source    string `json:"source"` // catalog or llm
}

// Ask answers one question. A blank sessionID starts a new conversation.
func (s *ChatService) Ask(userID uint, sessionID, question string) (*AskResponse, error) {
	if sessionID == "" {
		sessionID = model.GenerateUUID()
	}

	context, source := s.catalogContext(question)

	var history []AIChatMessage
	previous, err := s.ChatRepo.FindBySession(userID, sessionID, historyContextTurns)
	if err == nil {
		for _, turn := range previous {
			history = append(history,
				AIChatMessage{Role: "user", Content: turn.Question},
				AIChatMessage{Role: "assistant", Content: turn.Answer},
			)
		}
	}

	answer, err := s.AI.Chat(question, context, history)
	if err != nil {
		return nil, err
	}

	entry := &model.ChatHistory{
		UserID:    userID,
		SessionID: sessionID,
		Question:  question,
		Answer:    answer,
		Source:    source,
	}
	if err := s.ChatRepo.Save(entry); err != nil {
		return nil, err
	}

	return &AskResponse{
		SessionID: sessionID,
		Answer:    answer,
		Source:    source,
	}, nil
}

// StreamingAnswer carries an in-flight streamed response. The caller drains
// Chunks, then calls Finish with the assembled answer to persist the turn.
type StreamingAnswer struct {
	SessionID string
	Source    string
	Chunks    <-chan string
	Errs      <-chan error

	service  *ChatService
	userID   uint
	question string
}

// Finish records the completed turn in the session history.
func (a *StreamingAnswer) Finish(answer string) error {
	return a.service.ChatRepo.Save(&model.ChatHistory{
		UserID:    a.userID,
		SessionID: a.SessionID,
		Question:  a.question,
		Answer:    answer,
		Source:    a.Source,
	})
}

// AskStream is the streaming variant of Ask: deltas arrive on the returned
// channel as the model produces them.
func (s *ChatService) AskStream(userID uint, sessionID, question string) (*StreamingAnswer, error) {
	if sessionID == "" {
		sessionID = model.GenerateUUID()
	}

	context, source := s.catalogContext(question)

	var history []AIChatMessage
	previous, err := s.ChatRepo.FindBySession(userID, sessionID, historyContextTurns)
	if err == nil {
		for _, turn := range previous {
			history = append(history,
				AIChatMessage{Role: "user", Content: turn.Question},
				AIChatMessage{Role: "assistant", Content: turn.Answer},
			)
		}
	}

	chunks, errs := s.AI.ChatStream(question, context, history)
	return &StreamingAnswer{
		SessionID: sessionID,
		Source:    source,
		Chunks:    chunks,
		Errs:      errs,
		service:   s,
		userID:    userID,
		question:  question,
	}, nil
}

// catalogContext does a LIKE search over the catalog so the assistant can
// recommend actual courses. Plain text search is the baseline here; a vector
// index can replace it without touching callers.
func (s *ChatService) catalogContext(question string) (string, string) {
	var courses []model.Course
	term := "%" + question + "%"
	s.CourseRepo.DB.
		Where("published = ?", true).
		Where("title LIKE ? OR description LIKE ? OR category LIKE ?", term, term, term).
		Limit(3).
		Find(&courses)

	if len(courses) == 0 {
		return "", "llm"
	}

	context := ""
	for _, c := range courses {
		context += fmt.Sprintf("[Course] Title: %s\nInstructor: %s\nDescription: %s\n\n", c.Title, c.Instructor, c.Description)
	}
	return context, "catalog"
}

func (s *ChatService) History(userID uint) ([]model.ChatHistory, error) {
	return s.ChatRepo.ListSessions(userID)
}

func (s *ChatService) SessionDetail(userID uint, sessionID string, limit int) ([]model.ChatHistory, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.ChatRepo.FindBySession(userID, sessionID, limit)
}

func (s *ChatService) DeleteSession(userID uint, sessionID string) error {
	return s.ChatRepo.DeleteSession(userID, sessionID)
}
