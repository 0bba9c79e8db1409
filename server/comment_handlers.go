package server

import (
	"net/http"

	"github.com/diskusiapp/diskusi/server/middlewares"
	"github.com/gin-gonic/gin"
)

func (h *apiHandler) listComments(c *gin.Context) {
	comments, err := h.svc.ListComments(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

type createCommentForm struct {
	Content string `json:"content" binding:"required"`
}

func (h *apiHandler) createComment(c *gin.Context) {
	principal, _ := middlewares.GetPrincipal(c)

	var form createCommentForm
	if !bindJSON(c, &form) {
		return
	}

	comment, err := h.svc.CreateComment(principal, c.Param("id"), form.Content)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *apiHandler) deleteComment(c *gin.Context) {
	principal, _ := middlewares.GetPrincipal(c)

	if err := h.svc.DeleteComment(principal, c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
