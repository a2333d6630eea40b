package middleware

import (
	"net/http"
	"strings"

	"forum/internal/model"
	"forum/internal/pkg"
	"forum/internal/repository/mysql"
	"forum/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "user_id"
	ContextUserKey   = "current_user"
)

// CurrentUser returns the authenticated user injected by the middleware, or
// nil for anonymous requests.
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}

// AuthRequired validates the Bearer token against the Redis session store and
// loads the user row fresh from the database. Role flags are never taken from
// the token: a revoked admin loses admin rights on the very next request.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := resolveUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "please log in", "redirect": "/login"})
			return
		}
		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// OptionalAuth resolves the identity when a token is present but lets the
// request through as anonymous otherwise. Used by routes that accept
// anonymous actors, such as commenting.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := resolveUser(c); ok {
			c.Set(ContextUserIDKey, user.ID)
			c.Set(ContextUserKey, user)
		}
		c.Next()
	}
}

// AdminRequired gates the /admin group. Runs after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "please log in", "redirect": "/login"})
			return
		}
		if !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"msg": "admin rights required"})
			return
		}
		c.Next()
	}
}

func resolveUser(c *gin.Context) (*model.User, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	tokenStr := parts[1]
	claims, err := pkg.ParseAccess(tokenStr)
	if err != nil {
		return nil, false
	}

	// Single active login: the token must match the one stored at login.
	tokenRepo := &redis.TokenRepository{}
	origin, err := tokenRepo.GetUserToken(claims.UserID)
	if err != nil || origin != tokenStr {
		return nil, false
	}
	if err := tokenRepo.ExtendUserToken(claims.UserID); err != nil {
		return nil, false
	}

	userRepo := &mysql.UserRepository{DB: mysql.DB}
	user, err := userRepo.FindByID(claims.UserID)
	if err != nil {
		// Account deleted since login; drop the stale session.
		_ = tokenRepo.DeleteUserToken(claims.UserID)
		return nil, false
	}
	return user, true
}
