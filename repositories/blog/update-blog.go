package BlogRepository

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okanay/backend-blog-core/types"
	"github.com/okanay/backend-blog-core/utils"
)

// UpdateBlogPost rewrites the content fields and taxonomy links. Status is
// deliberately untouched here; it has its own operation with different
// authorization rules.
func (r *Repository) UpdateBlogPost(blogID uuid.UUID, input types.BlogUpdateInput) (*types.BlogPost, error) {
	defer utils.TimeTrack(time.Now(), "Blog -> Update Blog Post")

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

	query := `
		UPDATE blog_posts
		SET title = $1, description = $2, html = $3, image = $4, updated_at = NOW()
		WHERE id = $5
	`

	result, err := tx.Exec(query, input.Title, input.Description, input.HTML, input.Image, blogID)
	if err != nil {
		return nil, fmt.Errorf("failed to update blog post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("error checking rows affected: %w", err)
	}
	if affected == 0 {
		err = types.ErrNotFound
		return nil, err
	}

	_, err = tx.Exec(`DELETE FROM blog_categories WHERE blog_id = $1`, blogID)
	if err != nil {
		return nil, fmt.Errorf("failed to reset categories: %w", err)
	}
	_, err = tx.Exec(`DELETE FROM blog_tags WHERE blog_id = $1`, blogID)
	if err != nil {
		return nil, fmt.Errorf("failed to reset tags: %w", err)
	}

	if err = r.attachTaxonomy(tx, blogID, input.Categories, input.Tags); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return r.SelectBlogByID(blogID)
}
