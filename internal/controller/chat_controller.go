package controller

import (
	"eduflow_backend/internal/service"
	"eduflow_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// swagger:model AskRequest
type AskRequest struct {
	Question  string `json:"question" binding:"required"`
	SessionID string `json:"sessionId"`
}

// Ask godoc
// @Summary Ask the learning assistant
// @Description Answers are grounded in the course catalog when a match exists. Omit sessionId to start a new conversation.
// @Tags chat
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body AskRequest true "Question"
// @Success 200 {object} util.Response{data=service.AskResponse} "Success"
// @Router /api/chat/ask [post]
func (c *ChatController) Ask(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.ChatService.Ask(claims.UserID, req.SessionID, req.Question)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, resp)
}

// AskStream godoc
// @Summary Ask the learning assistant (streaming)
// @Description Same as /chat/ask but answers arrive as server-sent events, one content delta per event.
// @Tags chat
// @Accept  json
// @Produce  text/event-stream
// @Security ApiKeyAuth
// @Param   body body AskRequest true "Question"
// @Success 200 {string} string "SSE stream"
// @Router /api/chat/ask/stream [post]
func (c *ChatController) AskStream(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answer, err := c.ChatService.AskStream(claims.UserID, req.SessionID, req.Question)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")

	ctx.SSEvent("session", gin.H{"sessionId": answer.SessionID, "source": answer.Source})
	ctx.Writer.Flush()

	var full strings.Builder
	errs := answer.Errs
	for {
		select {
		case chunk, ok := <-answer.Chunks:
			if !ok {
				if err := answer.Finish(full.String()); err != nil {
					util.LogInternalError(ctx, err)
					return
				}
				ctx.SSEvent("done", gin.H{"sessionId": answer.SessionID})
				ctx.Writer.Flush()
				return
			}
			full.WriteString(chunk)
			ctx.SSEvent("message", chunk)
			ctx.Writer.Flush()
		case err, ok := <-errs:
			if !ok {
				// closed error channel would spin the select
				errs = nil
				continue
			}
			ctx.SSEvent("error", err.Error())
			ctx.Writer.Flush()
			return
		case <-ctx.Request.Context().Done():
			return
		}
	}
}

// History godoc
// @Summary List chat sessions
// @Tags chat
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.ChatHistory} "Success"
// @Router /api/chat/history [get]
func (c *ChatController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	sessions, err := c.ChatService.History(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, sessions)
}

// SessionDetail godoc
// @Summary One session's full conversation
// @Tags chat
// @Produce  json
// @Security ApiKeyAuth
// @Param   sessionId path string true "Session ID"
// @Success 200 {object} util.Response{data=[]model.ChatHistory} "Success"
// @Router /api/chat/history/{sessionId} [get]
func (c *ChatController) SessionDetail(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	history, err := c.ChatService.SessionDetail(claims.UserID, ctx.Param("sessionId"), util.QueryInt(ctx, "limit", 50))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, history)
}

// DeleteSession godoc
// @Summary Delete a chat session
// @Tags chat
// @Produce  json
// @Security ApiKeyAuth
// @Param   sessionId path string true "Session ID"
// @Success 200 {object} util.Response "Success"
// @Router /api/chat/history/{sessionId} [delete]
func (c *ChatController) DeleteSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ChatService.DeleteSession(claims.UserID, ctx.Param("sessionId")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
