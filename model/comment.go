package model

import (
	"time"

	"gorm.io/gorm"
)

/*

Comment is a user reply attached to a post

Id: primary key, use to identify a comment
CreatedAt: time when entity is created
DeletedAt: time when entity is deleted

PostID:
Post: post this comment replies to, "belongs-to" relation
AuthorID:
Author: user who wrote this comment, "belongs-to" relation
Content: comment body in plain text, never empty

*/
type Comment struct {
	Id        string `gorm:"primaryKey"`
	CreatedAt time.Time
	DeletedAt gorm.DeletedAt
	PostID    string `gorm:"index;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Post      Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  string `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Content   string
}
