package server

import (
	"net/http"
	"strconv"

	"github.com/diskusiapp/diskusi/server/middlewares"
	"github.com/diskusiapp/diskusi/service"
	"github.com/gin-gonic/gin"
)

func (h *apiHandler) getUser(c *gin.Context) {
	user, err := h.svc.GetUser(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *apiHandler) listUsers(c *gin.Context) {
	principal, _ := middlewares.GetPrincipal(c)

	users, err := h.svc.ListUsers(principal)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type updateUserForm struct {
	Name      *string `json:"name"`
	Bio       *string `json:"bio"`
	AvatarUrl *string `json:"avatar_url"`
	Verified  *bool   `json:"verified"`
	Role      *string `json:"role"`
}

func (h *apiHandler) updateUser(c *gin.Context) {
	principal, _ := middlewares.GetPrincipal(c)

	var form updateUserForm
	if !bindJSON(c, &form) {
		return
	}

	user, err := h.svc.UpdateUser(principal, c.Param("id"), service.UpdateUserInput{
		Name:      form.Name,
		Bio:       form.Bio,
		AvatarUrl: form.AvatarUrl,
		Verified:  form.Verified,
		Role:      form.Role,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *apiHandler) deleteUser(c *gin.Context) {
	principal, _ := middlewares.GetPrincipal(c)

	if err := h.svc.DeleteUser(principal, c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *apiHandler) leaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	entries, err := h.svc.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
