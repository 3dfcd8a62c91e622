package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"journal-backend/internal/shared/middleware"
	"journal-backend/pkg/container"
)

func setupRouter(c *container.Container) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())

	r.GET("/health", func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		if err := c.HealthCheck(checkCtx); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "DOWN", "error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "UP",
			"service": c.Config.App.Name,
			"version": c.Config.App.Version,
		})
	})

	v1 := r.Group("/api/v1")

	auth := middleware.AuthMiddleware(c.JWTManager)
	optionalAuth := middleware.OptionalAuthMiddleware(c.JWTManager)

	// Auth
	v1.POST("/auth/register", c.UserHandler.Register)
	v1.POST("/auth/login", c.UserHandler.Login)

	// Users
	users := v1.Group("/users")
	{
		users.GET("", optionalAuth, c.UserHandler.List)
		users.GET("/:id", optionalAuth, c.UserHandler.Get)
		users.GET("/:id/followers", optionalAuth, c.SocialHandler.Followers)
		users.GET("/:id/following", optionalAuth, c.SocialHandler.Following)
		users.GET("/:id/most-liked", optionalAuth, c.EntryHandler.MostLiked)

		users.POST("/:id/follow", auth, c.SocialHandler.Follow)
		users.DELETE("/:id/follow", auth, c.SocialHandler.Unfollow)

		users.PATCH("/me/password", auth, c.UserHandler.ChangePassword)
		users.PATCH("/me/privacy", auth, c.UserHandler.UpdatePrivacy)
		users.DELETE("/me", auth, c.UserHandler.DeleteAccount)
	}

	// Entries
	entries := v1.Group("/entries")
	{
		entries.GET("", optionalAuth, c.EntryHandler.List)
		entries.GET("/:id", optionalAuth, c.EntryHandler.Get)
		entries.GET("/:id/comments", optionalAuth, c.CommentHandler.ListByEntry)
		entries.GET("/:id/comments/count", optionalAuth, c.CommentHandler.CountByEntry)

		entries.POST("", auth, c.EntryHandler.Create)
		entries.PATCH("/:id", auth, c.EntryHandler.Update)
		entries.DELETE("/:id", auth, c.EntryHandler.Delete)
		entries.POST("/:id/like", auth, c.EntryHandler.Like)
		entries.DELETE("/:id/like", auth, c.EntryHandler.Unlike)
		entries.POST("/:id/comments", auth, c.CommentHandler.Create)
	}

	// Comments
	comments := v1.Group("/comments", auth)
	{
		comments.PATCH("/:id", c.CommentHandler.Update)
		comments.DELETE("/:id", c.CommentHandler.Delete)
		comments.POST("/:id/like", c.CommentHandler.Like)
		comments.DELETE("/:id/like", c.CommentHandler.Unlike)
	}

	// Notifications
	notifications := v1.Group("/notifications", auth)
	{
		notifications.GET("", c.NotificationHandler.List)
		notifications.POST("", c.NotificationHandler.Create)
		notifications.PATCH("/:id/read", c.NotificationHandler.MarkRead)
		notifications.DELETE("/:id", c.NotificationHandler.Delete)
	}

	return r
}
