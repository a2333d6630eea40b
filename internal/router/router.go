package router

import (
	"forum/internal/config"
	"forum/internal/handler"
	"forum/internal/middleware"

	"github.com/gin-gonic/gin"
)

// InitRouter wires the HTTP surface. Route shapes follow the original forum:
// mutations are gated by AuthRequired, commenting allows anonymous actors,
// /admin/* additionally requires the admin flag.
func InitRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	user := handler.NewUserHandler(cfg.SMTP)
	post := handler.NewPostHandler()
	comment := handler.NewCommentHandler()
	like := handler.NewLikeHandler()
	assistant := handler.NewAssistantHandler()
	admin := handler.NewAdminHandler()

	r.GET("/", post.Index)
	r.POST("/register", user.Register)
	r.POST("/login", user.Login)
	r.GET("/logout", middleware.AuthRequired(), user.Logout)
	r.GET("/profile", middleware.AuthRequired(), user.Profile)
	r.POST("/token/refresh", user.TokenRefresh)

	r.POST("/create_post", middleware.AuthRequired(), post.Create)
	r.POST("/edit_post/:id", middleware.AuthRequired(), post.Edit)
	r.GET("/delete_post/:id", middleware.AuthRequired(), post.Delete)

	r.GET("/post/:id", post.View)
	r.POST("/post/:id", middleware.OptionalAuth(), comment.Add)
	r.POST("/edit_comment/:id", middleware.AuthRequired(), comment.Edit)
	r.GET("/delete_comment/:id", middleware.AuthRequired(), comment.Delete)

	r.GET("/like_post/:id", middleware.AuthRequired(), like.Toggle)

	r.GET("/ai_assistant/:comment_id", assistant.Reply)

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		adminGroup.GET("", admin.Panel)
		adminGroup.GET("/posts", admin.Posts)
		adminGroup.GET("/comments", admin.Comments)
		adminGroup.GET("/users", admin.Users)

		adminGroup.GET("/make_admin/:id", admin.MakeAdmin)
		adminGroup.GET("/remove_admin/:id", admin.RemoveAdmin)
		adminGroup.GET("/make_moderator/:id", admin.MakeModerator)
		adminGroup.GET("/remove_moderator/:id", admin.RemoveModerator)
		adminGroup.GET("/delete_user/:id", admin.DeleteUser)

		adminGroup.GET("/delete_post/:id", admin.DeletePost)
		adminGroup.GET("/delete_comment/:id", admin.DeleteComment)
		adminGroup.POST("/edit_post/:id", admin.EditPost)
		adminGroup.POST("/edit_comment/:id", admin.EditComment)
	}

	return r
}
