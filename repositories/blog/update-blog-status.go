package BlogRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/okanay/backend-blog-core/types"
	"github.com/okanay/backend-blog-core/utils"
)

// UpdateBlogStatus changes only the status field. First publish stamps
// published_at; it is not reset on later transitions.
func (r *Repository) UpdateBlogStatus(blogID uuid.UUID, status types.BlogStatus) error {
	defer utils.TimeTrack(time.Now(), "Blog -> Update Blog Status")

	query := `
		UPDATE blog_posts
		SET status = $1,
		    published_at = CASE WHEN $1 = 'published' AND published_at IS NULL THEN NOW() ELSE published_at END,
		    updated_at = NOW()
		WHERE id = $2
	`

	result, err := r.db.Exec(query, status, blogID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return types.ErrNotFound
	}

	return nil
}
