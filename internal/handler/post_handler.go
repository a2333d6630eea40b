package handler

import (
	"net/http"

	"forum/internal/middleware"
	"forum/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	svc *service.PostService
}

type PostReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func NewPostHandler() *PostHandler {
	return &PostHandler{
		svc: service.NewPostService(),
	}
}

// Index lists all posts newest-first.
func (h *PostHandler) Index(c *gin.Context) {
	posts, err := h.svc.List()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts, "emergency_services": EmergencyServices})
}

func (h *PostHandler) Create(c *gin.Context) {
	var req PostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	post, err := h.svc.Create(middleware.CurrentUser(c), req.Title, req.Content)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "post created", "id": post.ID})
}

func (h *PostHandler) Edit(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req PostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.Edit(c.Request.Context(), middleware.CurrentUser(c), postID, req.Title, req.Content); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "post updated"})
}

func (h *PostHandler) Delete(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.CurrentUser(c), postID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "post deleted"})
}

// View returns one post with its comment thread.
func (h *PostHandler) View(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	detail, err := h.svc.View(postID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": detail, "emergency_services": EmergencyServices})
}
