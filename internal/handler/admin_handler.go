package handler

import (
	"net/http"

	"forum/internal/middleware"
	"forum/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc *service.AdminService
}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{
		svc: service.NewAdminService(),
	}
}

// Panel is the admin landing page: listings plus totals.
func (h *AdminHandler) Panel(c *gin.Context) {
	stats, err := h.svc.Stats()
	if err != nil {
		respondErr(c, err)
		return
	}
	users, err := h.svc.ListUsers()
	if err != nil {
		respondErr(c, err)
		return
	}
	posts, err := h.svc.ListPosts()
	if err != nil {
		respondErr(c, err)
		return
	}
	comments, err := h.svc.ListComments()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"stats":    stats,
		"users":    users,
		"posts":    posts,
		"comments": comments,
	})
}

func (h *AdminHandler) Posts(c *gin.Context) {
	posts, err := h.svc.ListPosts()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *AdminHandler) Comments(c *gin.Context) {
	comments, err := h.svc.ListComments()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.svc.ListUsers()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *AdminHandler) MakeAdmin(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.MakeAdmin(c.Request.Context(), middleware.CurrentUser(c), userID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "user is now an admin"})
}

func (h *AdminHandler) RemoveAdmin(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.RemoveAdmin(c.Request.Context(), middleware.CurrentUser(c), userID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "admin rights revoked"})
}

func (h *AdminHandler) MakeModerator(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.MakeModerator(c.Request.Context(), middleware.CurrentUser(c), userID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "user is now a moderator"})
}

func (h *AdminHandler) RemoveModerator(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.RemoveModerator(c.Request.Context(), middleware.CurrentUser(c), userID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "moderator rights revoked"})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteUser(c.Request.Context(), middleware.CurrentUser(c), userID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "user deleted"})
}

func (h *AdminHandler) DeletePost(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeletePost(c.Request.Context(), middleware.CurrentUser(c), postID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "post deleted by admin"})
}

func (h *AdminHandler) DeleteComment(c *gin.Context) {
	commentID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteComment(c.Request.Context(), middleware.CurrentUser(c), commentID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "comment deleted by admin"})
}

func (h *AdminHandler) EditPost(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req PostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	if err := h.svc.EditPost(c.Request.Context(), middleware.CurrentUser(c), postID, req.Title, req.Content); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "post updated by admin"})
}

func (h *AdminHandler) EditComment(c *gin.Context) {
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
	if err := h.svc.EditComment(c.Request.Context(), middleware.CurrentUser(c), commentID, req.Content); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "comment updated by admin"})
}
