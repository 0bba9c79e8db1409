package model

import (
	"time"

	"gorm.io/gorm"
)

/*

TrendingTopic is an AI-generated discussion prompt

Id: primary key, use to identify a topic
CreatedAt: time when entity is created
DeletedAt: time when entity is deleted

Title: short topic headline synthesized by the model
Description: one-paragraph elaboration synthesized by the model
CategoryID:
Category: category the model tagged the topic with, "belongs-to" relation.
	Only topics whose tag matches an existing category survive generation;
	the rest of the batch is dropped before insert.

Per-user ratings live in TopicRating; the aggregate (average, count) is
always computed by the database, never cached on this row.

*/
type TrendingTopic struct {
	Id          string `gorm:"primaryKey"`
	CreatedAt   time.Time
	DeletedAt   gorm.DeletedAt
	Title       string
	Description string
	CategoryID  string   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Category    Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// TrendingTopicStat is one row of the aggregate read views ("all topics" and
// "top topics"): the topic plus its database-computed rating statistics.
type TrendingTopicStat struct {
	Id            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	CategoryID    string    `json:"category_id"`
	CategoryName  string    `json:"category_name"`
	AverageRating float64   `json:"average_rating"`
	RatingsCount  int64     `json:"ratings_count"`
	CreatedAt     time.Time `json:"created_at"`
}
