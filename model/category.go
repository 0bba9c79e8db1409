package model

import "time"

/*

Category is a data model for a discussion category

Id: primary key, use to identify a category
CreatedAt: time when entity is created
UpdatedAt: time when entity is updated

Name: unique display name, e.g. "Politik"
Slug: unique url-safe form of the name
Color: hex color used by the frontend chip

Categories are seeded/managed data and read-heavy. The AI gateway embeds the
live category list into its prompts and any model output that does not match
one of these names is dropped.

Posts: posts filed under this category, "many-to-many" relation

*/
type Category struct {
	Id        string `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string `gorm:"uniqueIndex"`
	Slug      string `gorm:"uniqueIndex"`
	Color     string

	Posts []*Post `json:"posts" gorm:"many2many;"`
}
