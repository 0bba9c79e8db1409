package service

import (
	"math"
	"strings"
	"time"

	"github.com/diskusiapp/diskusi/model"
	"github.com/diskusiapp/diskusi/utils"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	postListLimit        = 30
	defaultPostListLimit = 20
)

type CreatePostInput struct {
	Content     string
	ImageUrls   []string
	CategoryIDs []string
}

// CreatePost inserts a post for the principal and awards post points, both in
// one transaction. All referenced categories must exist.
func (s *Service) CreatePost(principal Principal, input CreatePostInput) (*model.Post, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, invalid("content must not be empty")
	}

	categories, err := s.categoriesByIds(input.CategoryIDs)
	if err != nil {
		return nil, err
	}

	post := model.Post{
		Id:         uuid.New().String(),
		CreatedAt:  time.Now(),
		AuthorID:   principal.UserID,
		Content:    input.Content,
		ImageUrls:  input.ImageUrls,
		Categories: categories,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			return err
		}
		return awardPoints(tx, principal.UserID, PointsPerPost)
	})
	if err != nil {
		return nil, errors.Wrap(err, "create post")
	}

	var created model.Post
	s.DB.Preload("Author").Preload("Categories").First(&created, "id = ?", post.Id)
	return &created, nil
}

// GetPost loads one post as seen by viewerID. An empty viewerID (anonymous
// reader) yields is_liked/is_bookmarked false.
func (s *Service) GetPost(viewerID, id string) (*model.PostView, error) {
	var post model.Post
	res := s.DB.Preload("Author").Preload("Categories").Where("id = ?", id).First(&post)
	if res.RowsAffected != 1 {
		return nil, notFound("post")
	}

	stats, err := s.postStats(viewerID, []string{id})
	if err != nil {
		return nil, err
	}
	view := model.PostView{Post: post}
	applyStats(&view, stats[id])
	return &view, nil
}

type ListPostsQuery struct {
	// Cursor pages backwards through the global post order; zero means "from
	// the newest".
	Cursor int
	Limit  int
	// CategoryID optionally narrows the listing to one category.
	CategoryID string
}

// ListPosts returns posts newest first, cursor-paged, with the viewer's
// existence bits computed in one grouped query over the page.
func (s *Service) ListPosts(viewerID string, query ListPostsQuery) ([]model.PostView, error) {
	if query.Limit <= 0 {
		query.Limit = defaultPostListLimit
	}
	query.Limit = utils.Min(query.Limit, postListLimit)
	if query.Cursor <= 0 {
		query.Cursor = math.MaxInt32
	}

	tx := s.DB.Model(&model.Post{}).
		Preload("Author").
		Preload("Categories").
		Where("posts.cursor < ?", query.Cursor)
	if query.CategoryID != "" {
		tx = tx.Joins("JOIN post_categories ON post_categories.post_id = posts.id").
			Where("post_categories.category_id = ?", query.CategoryID)
	}

	var posts []model.Post
	if err := tx.Order("posts.created_at desc").Limit(query.Limit).Find(&posts).Error; err != nil {
		return nil, errors.Wrap(err, "list posts")
	}

	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.Id)
	}
	stats, err := s.postStats(viewerID, ids)
	if err != nil {
		return nil, err
	}

	views := make([]model.PostView, 0, len(posts))
	for i := range posts {
		view := model.PostView{Post: posts[i]}
		applyStats(&view, stats[posts[i].Id])
		views = append(views, view)
	}
	return views, nil
}

type UpdatePostInput struct {
	Content     *string
	ImageUrls   []string
	CategoryIDs []string
}

// UpdatePost mutates content/images/categories. Author only: admins can
// delete a post but not edit someone else's words.
func (s *Service) UpdatePost(principal Principal, id string, input UpdatePostInput) (*model.Post, error) {
	var post model.Post
	res := s.DB.Where("id = ?", id).First(&post)
	if res.RowsAffected != 1 {
		return nil, notFound("post")
	}
	if post.AuthorID != principal.UserID {
		return nil, ErrForbidden
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if input.Content != nil {
			if strings.TrimSpace(*input.Content) == "" {
				return invalid("content must not be empty")
			}
			post.Content = *input.Content
		}
		if input.ImageUrls != nil {
			post.ImageUrls = input.ImageUrls
		}
		if err := tx.Save(&post).Error; err != nil {
			return err
		}
		if input.CategoryIDs != nil {
			categories, err := s.categoriesByIds(input.CategoryIDs)
			if err != nil {
				return err
			}
			if err := tx.Model(&post).Association("Categories").Replace(categories); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalid) {
			return nil, err
		}
		return nil, errors.Wrap(err, "update post")
	}

	var updated model.Post
	s.DB.Preload("Author").Preload("Categories").First(&updated, "id = ?", id)
	return &updated, nil
}

// DeletePost soft-deletes a post. Owner or admin.
func (s *Service) DeletePost(principal Principal, id string) error {
	var post model.Post
	res := s.DB.Where("id = ?", id).First(&post)
	if res.RowsAffected != 1 {
		return notFound("post")
	}
	if post.AuthorID != principal.UserID && !principal.IsAdmin() {
		return ErrForbidden
	}
	return errors.Wrap(s.DB.Delete(&post).Error, "delete post")
}

type postStatsRow struct {
	PostID        string
	IsLiked       bool
	IsBookmarked  bool
	LikeCount     int64
	BookmarkCount int64
	CommentCount  int64
}

// postStats is the one canonical existence-check strategy: correlated EXISTS
// subqueries selected as boolean columns, one grouped query per page. Nothing
// else in the codebase computes is_liked/is_bookmarked.
func (s *Service) postStats(viewerID string, postIds []string) (map[string]postStatsRow, error) {
	stats := map[string]postStatsRow{}
	if len(postIds) == 0 {
		return stats, nil
	}

	var rows []postStatsRow
	err := s.DB.Raw(`
		SELECT posts.id AS post_id,
			EXISTS(SELECT 1 FROM post_likes pl WHERE pl.post_id = posts.id AND pl.user_id = ?) AS is_liked,
			EXISTS(SELECT 1 FROM post_bookmarks pb WHERE pb.post_id = posts.id AND pb.user_id = ?) AS is_bookmarked,
			(SELECT COUNT(*) FROM post_likes pl2 WHERE pl2.post_id = posts.id) AS like_count,
			(SELECT COUNT(*) FROM post_bookmarks pb2 WHERE pb2.post_id = posts.id) AS bookmark_count,
			(SELECT COUNT(*) FROM comments c WHERE c.post_id = posts.id AND c.deleted_at IS NULL) AS comment_count
		FROM posts WHERE posts.id IN ?`, viewerID, viewerID, postIds).Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "query post stats")
	}

	for _, row := range rows {
		stats[row.PostID] = row
	}
	return stats, nil
}

func applyStats(view *model.PostView, row postStatsRow) {
	view.IsLiked = row.IsLiked
	view.IsBookmarked = row.IsBookmarked
	view.LikeCount = row.LikeCount
	view.BookmarkCount = row.BookmarkCount
	view.CommentCount = row.CommentCount
}

func (s *Service) categoriesByIds(ids []string) ([]*model.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var categories []*model.Category
	if err := s.DB.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, errors.Wrap(err, "load categories")
	}
	if len(categories) != len(ids) {
		return nil, invalid("unknown category id")
	}
	return categories, nil
}
