package handler

import (
	"net/http"

	"forum/internal/service"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	svc *service.AssistantService
}

func NewAssistantHandler() *AssistantHandler {
	return &AssistantHandler{
		svc: service.NewAssistantService(),
	}
}

// Reply returns the canned assistant answer for a comment.
func (h *AssistantHandler) Reply(c *gin.Context) {
	commentID, ok := parseID(c, "comment_id")
	if !ok {
		return
	}
	response, err := h.svc.Reply(commentID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"response":   response,
		"comment_id": commentID,
	})
}
