package service

import (
	"strings"
	"time"

	"github.com/diskusiapp/diskusi/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ListComments returns a post's comments oldest first with authors attached.
func (s *Service) ListComments(postID string) ([]model.Comment, error) {
	if err := s.requirePost(postID); err != nil {
		return nil, err
	}
	var comments []model.Comment
	err := s.DB.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at asc").
		Find(&comments).Error
	if err != nil {
		return nil, errors.Wrap(err, "list comments")
	}
	return comments, nil
}

// CreateComment validates before any persistence call: empty content never
// reaches the store.
func (s *Service) CreateComment(principal Principal, postID, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, invalid("content must not be empty")
	}
	if err := s.requirePost(postID); err != nil {
		return nil, err
	}

	comment := model.Comment{
		Id:        uuid.New().String(),
		CreatedAt: time.Now(),
		PostID:    postID,
		AuthorID:  principal.UserID,
		Content:   content,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		return awardPoints(tx, principal.UserID, PointsPerComment)
	})
	if err != nil {
		return nil, errors.Wrap(err, "create comment")
	}

	var created model.Comment
	s.DB.Preload("Author").First(&created, "id = ?", comment.Id)
	return &created, nil
}

// DeleteComment removes a comment. Restricted to the comment's author.
func (s *Service) DeleteComment(principal Principal, id string) error {
	var comment model.Comment
	res := s.DB.Where("id = ?", id).First(&comment)
	if res.RowsAffected != 1 {
		return notFound("comment")
	}
	if comment.AuthorID != principal.UserID {
		return ErrForbidden
	}
	return errors.Wrap(s.DB.Delete(&comment).Error, "delete comment")
}

func (s *Service) requirePost(postID string) error {
	var count int64
	if err := s.DB.Model(&model.Post{}).Where("id = ?", postID).Count(&count).Error; err != nil {
		return errors.Wrap(err, "check post")
	}
	if count == 0 {
		return notFound("post")
	}
	return nil
}
