package server

import (
	"net/http"

	"github.com/diskusiapp/diskusi/server/middlewares"
	"github.com/diskusiapp/diskusi/service"
	"github.com/gin-gonic/gin"
)

func (h *apiHandler) listCategories(c *gin.Context) {
	categories, err := h.svc.ListCategories()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

type categoryForm struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

func (h *apiHandler) createCategory(c *gin.Context) {
	principal, _ := middlewares.GetPrincipal(c)

	var form categoryForm
	if !bindJSON(c, &form) {
		return
	}

	category, err := h.svc.CreateCategory(principal, service.CategoryInput(form))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

type updateCategoryForm struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

func (h *apiHandler) updateCategory(c *gin.Context) {
	principal, _ := middlewares.GetPrincipal(c)

	var form updateCategoryForm
	if !bindJSON(c, &form) {
		return
	}

	category, err := h.svc.UpdateCategory(principal, c.Param("id"), service.CategoryInput(form))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *apiHandler) deleteCategory(c *gin.Context) {
	principal, _ := middlewares.GetPrincipal(c)

	if err := h.svc.DeleteCategory(principal, c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
