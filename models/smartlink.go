package models

import "time"

// SmartLink is a public link-in-bio page identified by its slug.
type SmartLink struct {
	ID        string    `bson:"id" json:"id"`
	Slug      string    `bson:"slug" json:"slug"`
	Title     string    `bson:"title" json:"title"`
	Bio       string    `bson:"bio,omitempty" json:"bio,omitempty"`
	AvatarURL string    `bson:"avatar_url,omitempty" json:"avatarUrl,omitempty"`
	Theme     string    `bson:"theme,omitempty" json:"theme,omitempty"`
	Enabled   bool      `bson:"enabled" json:"enabled"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// LinkButton is a single button on a smart-link page.
type LinkButton struct {
	ID        string    `bson:"id" json:"id"`
	LinkID    string    `bson:"link_id" json:"linkId"`
	Label     string    `bson:"label" json:"label"`
	URL       string    `bson:"url" json:"url"`
	Position  int       `bson:"position" json:"position"`
	Clicks    int64     `bson:"clicks" json:"clicks"`
	Enabled   bool      `bson:"enabled" json:"enabled"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// SmartLinkPage is the public view of a page with its buttons resolved.
type SmartLinkPage struct {
	SmartLink
	Buttons []LinkButton `json:"buttons"`
}
