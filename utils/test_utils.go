package utils

import (
	"testing"
	"time"

	"github.com/diskusiapp/diskusi/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Direct-to-DB fixtures for service-level tests. API-level behavior is
// covered in the server package; these skip the HTTP surface on purpose.

func TestCreateUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()
	user := model.User{
		Id:        uuid.New().String(),
		CreatedAt: time.Now(),
		Name:      name,
		Email:     name + "@example.com",
		Role:      model.RoleUser,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestCreateCategory(t *testing.T, db *gorm.DB, name string) *model.Category {
	t.Helper()
	category := model.Category{
		Id:        uuid.New().String(),
		CreatedAt: time.Now(),
		Name:      name,
		Slug:      name,
	}
	require.NoError(t, db.Create(&category).Error)
	return &category
}

func TestCreatePost(t *testing.T, db *gorm.DB, authorID, content string) *model.Post {
	t.Helper()
	post := model.Post{
		Id:        uuid.New().String(),
		CreatedAt: time.Now(),
		AuthorID:  authorID,
		Content:   content,
	}
	require.NoError(t, db.Create(&post).Error)
	return &post
}

func TestCreateTopic(t *testing.T, db *gorm.DB, categoryID, title string) *model.TrendingTopic {
	t.Helper()
	topic := model.TrendingTopic{
		Id:         uuid.New().String(),
		CreatedAt:  time.Now(),
		Title:      title,
		CategoryID: categoryID,
	}
	require.NoError(t, db.Create(&topic).Error)
	return &topic
}
