package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

/*

Post is a piece of user-submitted discussion content

Id: primary key, use to identify a post
CreatedAt: time when entity is created
DeletedAt: time when entity is deleted

AuthorID:
Author: user who wrote this post, "belongs-to" relation
Content: post body in plain text
ImageUrls: optional attached image locations, stored as a text array

Categories: categories this post is filed under, "many-to-many" relation
	through post_categories. At most a handful per post, assigned by the
	author or by AI classification.
LikedBy: users who liked this post, "many-to-many" relation through post_likes
BookmarkedBy: users who bookmarked this post, "many-to-many" relation through
	post_bookmarks

Cursor: auto-inc global-unique index to keep the relative order of posts

*/
type Post struct {
	Id        string `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
	AuthorID  string         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Author    User           `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Content   string
	ImageUrls pq.StringArray `gorm:"type:text[]"`

	Categories   []*Category `json:"categories" gorm:"many2many;"`
	LikedBy      []*User     `json:"liked_by" gorm:"many2many;"`
	BookmarkedBy []*User     `json:"bookmarked_by" gorm:"many2many;"`

	Cursor int32 `gorm:"autoIncrement"`
}

// PostView is a post as seen by one viewer: the row itself plus the
// viewer-dependent existence bits and the public counters. The bits are
// always computed through EXISTS subqueries, never by embedding relation
// rows and filtering in the application.
type PostView struct {
	Post
	IsLiked       bool  `json:"is_liked"`
	IsBookmarked  bool  `json:"is_bookmarked"`
	LikeCount     int64 `json:"like_count"`
	BookmarkCount int64 `json:"bookmark_count"`
	CommentCount  int64 `json:"comment_count"`
}
