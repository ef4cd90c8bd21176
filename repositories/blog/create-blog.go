package BlogRepository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okanay/backend-blog-core/types"
	"github.com/okanay/backend-blog-core/utils"
)

// CreateBlogPost inserts the post and its taxonomy links in one transaction.
func (r *Repository) CreateBlogPost(input types.BlogPostCreateInput, userID uuid.UUID) (*types.BlogPost, error) {
	defer utils.TimeTrack(time.Now(), "Blog -> Create Blog Post")

	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Rollback transaction on error
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	var blogID uuid.UUID
	query := `
		INSERT INTO blog_posts (
			user_id, slug, title, description, html, image, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id
	`

	err = tx.QueryRow(
		query,
		userID,
		input.Slug,
		input.Title,
		input.Description,
		input.HTML,
		input.Image,
		types.BlogStatusDraft,
	).Scan(&blogID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert blog post: %w", err)
	}

	if err = r.attachTaxonomy(tx, blogID, input.Categories, input.Tags); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return r.SelectBlogByID(blogID)
}

func (r *Repository) attachTaxonomy(tx *sql.Tx, blogID uuid.UUID, categories, tags []string) error {
	for _, category := range categories {
		_, err := tx.Exec(
			`INSERT INTO blog_categories (blog_id, category_value) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			blogID, category,
		)
		if err != nil {
			return fmt.Errorf("failed to attach category: %w", err)
		}
	}

	for _, tag := range tags {
		_, err := tx.Exec(
			`INSERT INTO blog_tags (blog_id, tag_value) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			blogID, tag,
		)
		if err != nil {
			return fmt.Errorf("failed to attach tag: %w", err)
		}
	}

	return nil
}
