// Package server wires the HTTP API: route registration, request
// binding/validation and the translation of service error kinds into
// statuses. All business behavior lives in the service package.
package server

import (
	"net/http"

	"github.com/diskusiapp/diskusi/server/middlewares"
	"github.com/diskusiapp/diskusi/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type apiHandler struct {
	svc *service.Service
}

// NewRouter builds the full gin engine with the Logger and Recovery
// middleware already attached by gin.Default.
func NewRouter(svc *service.Service) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	h := &apiHandler{svc: svc}

	api := router.Group("/api")

	// public reads; OptionalAuth fills the viewer for is_liked/is_bookmarked
	public := api.Group("", middlewares.OptionalAuth())
	public.POST("/auth/register", h.register)
	public.POST("/auth/login", h.login)
	public.GET("/posts", h.listPosts)
	public.GET("/posts/:id", h.getPost)
	public.GET("/posts/:id/comments", h.listComments)
	public.GET("/users/:id", h.getUser)
	public.GET("/categories", h.listCategories)
	public.GET("/leaderboard", h.leaderboard)
	public.GET("/ai/topics", h.allTopics)
	// the web client historically POSTs this read
	public.POST("/ai/topics", h.allTopics)
	public.GET("/ai/trending/top", h.topTopics)

	authed := api.Group("", middlewares.Auth())
	authed.POST("/posts", h.createPost)
	authed.PUT("/posts/:id", h.updatePost)
	authed.DELETE("/posts/:id", h.deletePost)
	authed.POST("/posts/:id/like", h.toggleLike)
	authed.POST("/posts/:id/bookmark", h.toggleBookmark)
	authed.POST("/posts/:id/comments", h.createComment)
	authed.DELETE("/comments/:id", h.deleteComment)
	authed.PUT("/users/:id", h.updateUser)
	authed.DELETE("/users/:id", h.deleteUser)
	authed.POST("/ai/post/categories", h.classifyPost)
	authed.POST("/ai/trending/rate", h.rateTopic)

	admin := authed.Group("", middlewares.AdminOnly())
	admin.GET("/users", h.listUsers)
	admin.POST("/categories", h.createCategory)
	admin.PUT("/categories/:id", h.updateCategory)
	admin.DELETE("/categories/:id", h.deleteCategory)
	admin.POST("/ai/trending/generate", h.generateTopics)

	return router
}
