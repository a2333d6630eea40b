package handler

import (
	"errors"
	"net/http"
	"strconv"

	"forum/internal/pkg"

	"github.com/gin-gonic/gin"
)

// respondErr maps the service error taxonomy onto HTTP statuses. The "msg"
// field plays the role of the transient user notice; unauthenticated replies
// also carry the login redirect.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pkg.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
	case errors.Is(err, pkg.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"msg": err.Error(), "redirect": "/login"})
	case errors.Is(err, pkg.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"msg": err.Error()})
	case errors.Is(err, pkg.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "internal error"})
	}
}

func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
		return 0, false
	}
	return id, true
}
