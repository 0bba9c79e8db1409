package model

import "time"

const (
	MinTopicRating = 1
	MaxTopicRating = 5
)

/*

TopicRating is one user's 1-5 score for a trending topic

UserID: user id
TopicID: trending topic id
Score: integer in [MinTopicRating, MaxTopicRating]
CreatedAt: time when relation is created
UpdatedAt: time when relation is last overwritten

A (user, topic) pair has at most one rating. Re-rating is a single
insert-or-update statement keyed on the composite primary key, so the last
write wins and no duplicate can exist even under concurrent requests.

*/
type TopicRating struct {
	UserID    string `gorm:"primaryKey"`
	TopicID   string `gorm:"primaryKey"`
	Score     int
	CreatedAt time.Time
	UpdatedAt time.Time
}
