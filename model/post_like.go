package model

import "time"

/*

PostLike is a "many-to-many" relation of a user liking a post

UserID: user id
PostID: post id
CreatedAt: time when relation is created

Presence of the row means "liked", absence means "not liked". The row is
hard-deleted on un-like: no history of toggles is kept, so there is no
DeletedAt here. The composite primary key is the uniqueness constraint the
toggle write serializes on.

*/
type PostLike struct {
	UserID    string `gorm:"primaryKey"`
	PostID    string `gorm:"primaryKey"`
	CreatedAt time.Time
}
