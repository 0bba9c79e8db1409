package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

/*

User is a data model for a platform member

Id: primary key, use to identify a user
CreatedAt: time when entity is created
DeletedAt: time when entity is deleted

Name: display name
Email: unique login identity
PasswordHash: bcrypt hash, never serialized
AvatarUrl: profile picture
Bio: free-text profile description
Points: accumulator increased by award events (post, comment, first rating)
Verified: set by an admin after manual review
Role: "user" or "admin", gates the admin API group

LikedPosts: posts this user liked, "many-to-many" relation through post_likes
BookmarkedPosts: posts this user bookmarked, "many-to-many" relation through post_bookmarks

*/
type User struct {
	Id           string `gorm:"primaryKey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
	AvatarUrl    string
	Bio          string
	Points       int    `gorm:"default:0"`
	Verified     bool   `gorm:"default:false"`
	Role         string `gorm:"default:user"`

	LikedPosts      []*Post `json:"liked_posts" gorm:"many2many;"`
	BookmarkedPosts []*Post `json:"bookmarked_posts" gorm:"many2many;"`
}

// IsAdmin reports whether the user can use the admin API group.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// LeaderboardEntry is the public shape of a user on the points leaderboard.
// Filled from User via copier, never stored.
type LeaderboardEntry struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	AvatarUrl string `json:"avatar_url"`
	Points    int    `json:"points"`
	Verified  bool   `json:"verified"`
}
