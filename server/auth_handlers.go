package server

import (
	"net/http"

	"github.com/diskusiapp/diskusi/server/middlewares"
	"github.com/diskusiapp/diskusi/service"
	"github.com/gin-gonic/gin"
)

type registerForm struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (h *apiHandler) register(c *gin.Context) {
	var form registerForm
	if !bindJSON(c, &form) {
		return
	}

	user, err := h.svc.Register(service.RegisterInput{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	token, err := middlewares.IssueToken(user.Id, user.Role)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

type loginForm struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *apiHandler) login(c *gin.Context) {
	var form loginForm
	if !bindJSON(c, &form) {
		return
	}

	user, err := h.svc.Authenticate(form.Email, form.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}

	token, err := middlewares.IssueToken(user.Id, user.Role)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}
