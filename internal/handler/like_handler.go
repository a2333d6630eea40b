package handler

import (
	"net/http"

	"forum/internal/middleware"
	"forum/internal/service"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	svc *service.LikeService
}

func NewLikeHandler() *LikeHandler {
	return &LikeHandler{
		svc: service.NewLikeService(),
	}
}

// Toggle flips the actor's like on a post.
func (h *LikeHandler) Toggle(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	liked, err := h.svc.Toggle(c.Request.Context(), middleware.CurrentUser(c), postID)
	if err != nil {
		respondErr(c, err)
		return
	}
	msg := "like removed"
	if liked {
		msg = "post liked"
	}
	c.JSON(http.StatusOK, gin.H{"msg": msg, "liked": liked})
}
