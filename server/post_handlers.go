package server

import (
	"net/http"
	"strconv"

	"github.com/diskusiapp/diskusi/server/middlewares"
	"github.com/diskusiapp/diskusi/service"
	"github.com/gin-gonic/gin"
)

type createPostForm struct {
	Content     string   `json:"content" binding:"required"`
	ImageUrls   []string `json:"image_urls"`
	CategoryIDs []string `json:"category_ids"`
}

func (h *apiHandler) createPost(c *gin.Context) {
	principal, _ := middlewares.GetPrincipal(c)

	var form createPostForm
	if !bindJSON(c, &form) {
		return
	}

	post, err := h.svc.CreatePost(principal, service.CreatePostInput{
		Content:     form.Content,
		ImageUrls:   form.ImageUrls,
		CategoryIDs: form.CategoryIDs,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *apiHandler) getPost(c *gin.Context) {
	principal, _ := middlewares.GetPrincipal(c)

	view, err := h.svc.GetPost(principal.UserID, c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *apiHandler) listPosts(c *gin.Context) {
	principal, _ := middlewares.GetPrincipal(c)

	cursor, _ := strconv.Atoi(c.Query("cursor"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	views, err := h.svc.ListPosts(principal.UserID, service.ListPostsQuery{
		Cursor:     cursor,
		Limit:      limit,
		CategoryID: c.Query("category_id"),
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

type updatePostForm struct {
	Content     *string  `json:"content"`
	ImageUrls   []string `json:"image_urls"`
	CategoryIDs []string `json:"category_ids"`
}

func (h *apiHandler) updatePost(c *gin.Context) {
	principal, _ := middlewares.GetPrincipal(c)

	var form updatePostForm
	if !bindJSON(c, &form) {
		return
	}

	post, err := h.svc.UpdatePost(principal, c.Param("id"), service.UpdatePostInput{
		Content:     form.Content,
		ImageUrls:   form.ImageUrls,
		CategoryIDs: form.CategoryIDs,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *apiHandler) deletePost(c *gin.Context) {
	principal, _ := middlewares.GetPrincipal(c)

	if err := h.svc.DeletePost(principal, c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *apiHandler) toggleLike(c *gin.Context) {
	principal, _ := middlewares.GetPrincipal(c)

	active, err := h.svc.ToggleLike(principal, c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_liked": active})
}

func (h *apiHandler) toggleBookmark(c *gin.Context) {
	principal, _ := middlewares.GetPrincipal(c)

	active, err := h.svc.ToggleBookmark(principal, c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_bookmarked": active})
}
