package handler

import (
	"net/http"

	"forum/internal/middleware"
	"forum/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	svc *service.CommentService
}

type CommentReq struct {
	Content     string `json:"content"`
	IsAnonymous bool   `json:"is_anonymous"`
}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{
		svc: service.NewCommentService(),
	}
}

// Add posts a comment to a post. Anonymous comments pass with no identity at
// all, which is why this route sits behind OptionalAuth.
func (h *CommentHandler) Add(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req CommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	comment, err := h.svc.Add(middleware.CurrentUser(c), postID, req.Content, req.IsAnonymous)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "comment added", "id": comment.ID})
}

func (h *CommentHandler) Edit(c *gin.Context) {
	commentID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	postID, err := h.svc.Edit(c.Request.Context(), middleware.CurrentUser(c), commentID, req.Content)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "comment updated", "post_id": postID})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, ok := parseID(c, "id")
	if !ok {
		return
	}
	postID, err := h.svc.Delete(c.Request.Context(), middleware.CurrentUser(c), commentID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "comment deleted", "post_id": postID})
}
