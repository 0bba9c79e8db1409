package service

import (
	"context"
	"strings"
	"time"

	"github.com/diskusiapp/diskusi/ai"
	"github.com/diskusiapp/diskusi/model"
	Logger "github.com/diskusiapp/diskusi/utils/log"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultTopTopicsLimit = 10
	maxTopTopicsLimit     = 50
	maxGenerateCount      = 50
)

// RateTopic upserts the principal's 1-5 score for a topic. The write is a
// single insert-or-update statement keyed on the (user, topic) pair: last
// write wins, re-rating can never create a duplicate.
func (s *Service) RateTopic(ctx context.Context, principal Principal, topicID string, score int) error {
	if score < model.MinTopicRating || score > model.MaxTopicRating {
		return invalid("rating must be between 1 and 5")
	}
	var topic model.TrendingTopic
	res := s.DB.Where("id = ?", topicID).First(&topic)
	if res.RowsAffected != 1 {
		return notFound("topic")
	}

	// First rating on a topic earns points. The existence check races with
	// the upsert, worst case is a missed award, never a duplicate rating.
	var prior int64
	s.DB.Model(&model.TopicRating{}).
		Where("user_id = ? AND topic_id = ?", principal.UserID, topicID).
		Count(&prior)

	now := time.Now()
	rating := model.TopicRating{
		UserID:    principal.UserID,
		TopicID:   topicID,
		Score:     score,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "topic_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
		}).Create(&rating)
		if res.Error != nil {
			return res.Error
		}
		if prior == 0 {
			return awardPoints(tx, principal.UserID, PointsPerFirstRating)
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "upsert rating")
	}

	if s.Redis != nil {
		if err := s.Redis.InvalidateTopTopics(ctx); err != nil {
			Logger.Log.Warn("fail to invalidate top topics cache: ", err)
		}
	}
	return nil
}

const topicStatsQuery = `
	SELECT t.id, t.title, t.description, t.category_id, c.name AS category_name,
		COALESCE(AVG(r.score), 0) AS average_rating,
		COUNT(r.user_id) AS ratings_count,
		t.created_at
	FROM trending_topics t
	JOIN categories c ON c.id = t.category_id
	LEFT JOIN topic_ratings r ON r.topic_id = t.id
	WHERE t.deleted_at IS NULL
	GROUP BY t.id, c.name`

// AllTopics is the "all topics" read view: every generated topic with its
// current aggregate, newest first. Aggregates are computed by the database.
func (s *Service) AllTopics(ctx context.Context) ([]model.TrendingTopicStat, error) {
	var stats []model.TrendingTopicStat
	err := s.DB.Raw(topicStatsQuery + " ORDER BY t.created_at DESC").Scan(&stats).Error
	if err != nil {
		return nil, errors.Wrap(err, "query topics")
	}
	return stats, nil
}

// TopTopics is the "top topics" read view: aggregates sorted descending by
// average rating, truncated to limit. Tie order is whatever the database
// returns. Cached behind a short TTL when redis is configured.
func (s *Service) TopTopics(ctx context.Context, limit int) ([]model.TrendingTopicStat, error) {
	if limit <= 0 {
		limit = defaultTopTopicsLimit
	}
	if limit > maxTopTopicsLimit {
		limit = maxTopTopicsLimit
	}

	if s.Redis != nil {
		if cached, err := s.Redis.GetTopTopics(ctx, limit); err == nil {
			return cached, nil
		}
	}

	var stats []model.TrendingTopicStat
	err := s.DB.Raw(topicStatsQuery+" ORDER BY average_rating DESC LIMIT ?", limit).Scan(&stats).Error
	if err != nil {
		return nil, errors.Wrap(err, "query top topics")
	}

	if s.Redis != nil {
		if err := s.Redis.SetTopTopics(ctx, limit, stats); err != nil {
			Logger.Log.Warn("fail to cache top topics: ", err)
		}
	}
	return stats, nil
}

// GenerateTopics asks the model for count trending topics, drops every draft
// whose category doesn't exist, and bulk-inserts the survivors together with
// an audit record in one transaction. A malformed model reply or a failed
// insert fails the whole batch: no partial success.
func (s *Service) GenerateTopics(ctx context.Context, principal Principal, count int) ([]model.TrendingTopic, error) {
	if !principal.IsAdmin() {
		return nil, ErrForbidden
	}
	if count <= 0 || count > maxGenerateCount {
		return nil, invalid("count must be between 1 and 50")
	}

	categories, err := s.ListCategories()
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, invalid("no categories to tag topics with")
	}

	prompt := ai.BuildTopicsPrompt(count, categoryNames(categories))
	raw, err := s.AI.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, errors.Wrap(err, "generate topics")
	}

	drafts, err := ai.DecodeTopicDrafts(raw)
	if err != nil {
		return nil, err
	}
	kept := ai.FilterTopicDrafts(drafts, categories)

	now := time.Now()
	topics := make([]model.TrendingTopic, 0, len(kept))
	for _, d := range kept {
		topics = append(topics, model.TrendingTopic{
			Id:          uuid.New().String(),
			CreatedAt:   now,
			Title:       d.Title,
			Description: d.Description,
			CategoryID:  d.CategoryID,
		})
	}

	record := model.TopicGenerationRecord{
		Id:             uuid.New().String(),
		CreatedAt:      now,
		RequestedCount: count,
		KeptCount:      len(topics),
		Prompt:         prompt,
		RawResponse:    datatypes.JSON(ai.StripCodeFence(raw)),
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if len(topics) > 0 {
			if err := tx.Create(&topics).Error; err != nil {
				return err
			}
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "persist generated topics")
	}

	if s.Redis != nil {
		if err := s.Redis.InvalidateTopTopics(ctx); err != nil {
			Logger.Log.Warn("fail to invalidate top topics cache: ", err)
		}
	}
	return topics, nil
}

// ClassifyPostCategories returns up to three category ids matching free-text
// post content. Unknown names from the model are silently dropped.
func (s *Service) ClassifyPostCategories(ctx context.Context, content string) ([]string, error) {
	if strings.TrimSpace(content) == "" {
		return nil, invalid("content must not be empty")
	}
	categories, err := s.ListCategories()
	if err != nil {
		return nil, err
	}

	prompt := ai.BuildClassifyPrompt(content, categoryNames(categories))
	raw, err := s.AI.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, errors.Wrap(err, "classify content")
	}

	names, err := ai.DecodeStringArray(raw)
	if err != nil {
		return nil, err
	}
	return ai.FilterCategoryNames(names, categories, ai.MaxCategoriesPerPost), nil
}

func categoryNames(categories []model.Category) []string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return names
}
