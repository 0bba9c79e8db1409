package service

import (
	"strings"
	"time"

	"github.com/diskusiapp/diskusi/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ListCategories returns every category, name-ordered. Read-heavy, no
// pagination: the platform runs on a small curated set.
func (s *Service) ListCategories() ([]model.Category, error) {
	var categories []model.Category
	if err := s.DB.Order("name asc").Find(&categories).Error; err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	return categories, nil
}

type CategoryInput struct {
	Name  string
	Color string
	Slug  string
}

// CreateCategory adds a managed category. Admin only. An empty slug is
// derived from the name.
func (s *Service) CreateCategory(principal Principal, input CategoryInput) (*model.Category, error) {
	if !principal.IsAdmin() {
		return nil, ErrForbidden
	}
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, invalid("name must not be empty")
	}
	if input.Slug == "" {
		input.Slug = Slugify(input.Name)
	}

	var existing model.Category
	if res := s.DB.Where("name = ? OR slug = ?", input.Name, input.Slug).First(&existing); res.RowsAffected > 0 {
		return nil, errors.Wrap(ErrConflict, "category already exists")
	}

	category := model.Category{
		Id:        uuid.New().String(),
		CreatedAt: time.Now(),
		Name:      input.Name,
		Slug:      input.Slug,
		Color:     input.Color,
	}
	if err := s.DB.Create(&category).Error; err != nil {
		return nil, errors.Wrap(err, "create category")
	}
	return &category, nil
}

// UpdateCategory renames/recolors a category. Admin only.
func (s *Service) UpdateCategory(principal Principal, id string, input CategoryInput) (*model.Category, error) {
	if !principal.IsAdmin() {
		return nil, ErrForbidden
	}
	var category model.Category
	res := s.DB.Where("id = ?", id).First(&category)
	if res.RowsAffected != 1 {
		return nil, notFound("category")
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		category.Name = name
	}
	if input.Color != "" {
		category.Color = input.Color
	}
	if input.Slug != "" {
		category.Slug = input.Slug
	}
	if err := s.DB.Save(&category).Error; err != nil {
		return nil, errors.Wrap(err, "update category")
	}
	return &category, nil
}

// DeleteCategory removes a category and its post associations. Admin only.
func (s *Service) DeleteCategory(principal Principal, id string) error {
	if !principal.IsAdmin() {
		return ErrForbidden
	}
	var category model.Category
	res := s.DB.Where("id = ?", id).First(&category)
	if res.RowsAffected != 1 {
		return notFound("category")
	}
	if err := s.DB.Where("category_id = ?", id).Delete(&model.PostCategory{}).Error; err != nil {
		return errors.Wrap(err, "detach posts")
	}
	return errors.Wrap(s.DB.Delete(&category).Error, "delete category")
}

// Slugify lowercases and dashes a category name for urls.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}
