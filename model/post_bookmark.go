package model

import "time"

/*

PostBookmark is a "many-to-many" relation of a user bookmarking a post

UserID: user id
PostID: post id
CreatedAt: time when relation is created

Same presence/absence semantics as PostLike: hard delete on toggle off,
composite primary key as the uniqueness constraint.

*/
type PostBookmark struct {
	UserID    string `gorm:"primaryKey"`
	PostID    string `gorm:"primaryKey"`
	CreatedAt time.Time
}
