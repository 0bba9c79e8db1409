package server

import (
	"net/http"
	"strconv"

	"github.com/diskusiapp/diskusi/server/middlewares"
	"github.com/gin-gonic/gin"
)

type classifyForm struct {
	Content string `json:"content" binding:"required"`
}

func (h *apiHandler) classifyPost(c *gin.Context) {
	var form classifyForm
	if !bindJSON(c, &form) {
		return
	}

	ids, err := h.svc.ClassifyPostCategories(c.Request.Context(), form.Content)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category_ids": ids})
}

type generateTopicsForm struct {
	Count int `json:"count" binding:"required,min=1,max=50"`
}

func (h *apiHandler) generateTopics(c *gin.Context) {
	principal, _ := middlewares.GetPrincipal(c)

	var form generateTopicsForm
	if !bindJSON(c, &form) {
		return
	}

	topics, err := h.svc.GenerateTopics(c.Request.Context(), principal, form.Count)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, topics)
}

type rateTopicForm struct {
	TopicID string `json:"topic_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

func (h *apiHandler) rateTopic(c *gin.Context) {
	principal, _ := middlewares.GetPrincipal(c)

	var form rateTopicForm
	if !bindJSON(c, &form) {
		return
	}

	if err := h.svc.RateTopic(c.Request.Context(), principal, form.TopicID, form.Rating); err != nil {
		abortWithError(c, err)
		return
	}
	// caller re-fetches both views after a successful rate
	c.JSON(http.StatusOK, gin.H{"rated": true})
}

func (h *apiHandler) allTopics(c *gin.Context) {
	stats, err := h.svc.AllTopics(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *apiHandler) topTopics(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	stats, err := h.svc.TopTopics(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
