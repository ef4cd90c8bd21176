package BlogRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/okanay/backend-blog-core/types"
	"github.com/okanay/backend-blog-core/utils"
)

// HardDeleteBlogByID removes the post; junction rows go with it via FK
// cascade, so no transaction is needed for a single-post delete.
func (r *Repository) HardDeleteBlogByID(blogID uuid.UUID) error {
	defer utils.TimeTrack(time.Now(), "Blog -> Hard Delete Blog By ID")

	query := `DELETE FROM blog_posts WHERE id = $1`

	result, err := r.db.Exec(query, blogID)
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
