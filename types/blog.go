package types

import (
	"time"

	"github.com/google/uuid"
)

// BlogStatus - blog status enum type
type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
	BlogStatusArchived  BlogStatus = "archived"
)

// IsValid reports whether s is one of the known statuses.
func (s BlogStatus) IsValid() bool {
	switch s {
	case BlogStatusDraft, BlogStatusPublished, BlogStatusArchived:
		return true
	}
	return false
}

// Table Model (database/migrations/00002_blog.sql)
type BlogPost struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	UserID      uuid.UUID  `db:"user_id" json:"userId"`
	Slug        string     `db:"slug" json:"slug"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	HTML        string     `db:"html" json:"html"`
	Image       string     `db:"image" json:"image"`
	Status      BlogStatus `db:"status" json:"status"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
	PublishedAt *time.Time `db:"published_at" json:"publishedAt,omitempty"`
}

// BlogCardView - trimmed projection for list endpoints
type BlogCardView struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	UserID      uuid.UUID  `db:"user_id" json:"userId"`
	Slug        string     `db:"slug" json:"slug"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Image       string     `db:"image" json:"image"`
	Status      BlogStatus `db:"status" json:"status"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
}

// CategoryView / TagView - taxonomy projections
type CategoryView struct {
	Name  string `db:"name" json:"name"`
	Value string `db:"value" json:"value"`
}

type TagView struct {
	Name  string `db:"name" json:"name"`
	Value string `db:"value" json:"value"`
}

// ----- INPUT STRUCTURES -----

// BlogPostCreateInput - blog post creation input
type BlogPostCreateInput struct {
	Slug        string   `json:"slug" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	HTML        string   `json:"html" binding:"required"`
	Image       string   `json:"image"`
	Categories  []string `json:"categories"`
	Tags        []string `json:"tags"`
}

// BlogUpdateInput - content edits; author-only, status excluded on purpose
type BlogUpdateInput struct {
	ID          string   `json:"id" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	HTML        string   `json:"html" binding:"required"`
	Image       string   `json:"image"`
	Categories  []string `json:"categories"`
	Tags        []string `json:"tags"`
}

// BlogUpdateStatusInput - status-only change (publish/unpublish/archive)
type BlogUpdateStatusInput struct {
	ID     string     `json:"id" binding:"required"`
	Status BlogStatus `json:"status" binding:"required"`
}

// CategoryInput - category creation input
type CategoryInput struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// TagInput - tag creation input
type TagInput struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value" binding:"required"`
}
