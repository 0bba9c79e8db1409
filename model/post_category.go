package model

import "time"

/*

PostCategory is a "many-to-many" relation of a post filed under a category

PostID: post id
CategoryID: category id
CreatedAt: time when relation is created

*/
type PostCategory struct {
	PostID     string `gorm:"primaryKey"`
	CategoryID string `gorm:"primaryKey"`
	CreatedAt  time.Time
}
