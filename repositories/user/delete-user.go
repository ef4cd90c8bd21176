package UserRepository

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okanay/backend-blog-core/types"
	"github.com/okanay/backend-blog-core/utils"
)

// DeleteAccountCascade removes the account and everything it authored in a
// single transaction. Either all of it disappears or none of it does; a
// concurrent reader never observes posts without their author or vice versa.
// The blog_categories/blog_tags junction rows go with the posts via FK
// cascade. Returns the number of posts removed.
func (r *Repository) DeleteAccountCascade(userID uuid.UUID) (int64, error) {
	defer utils.TimeTrack(time.Now(), "User -> Delete Account Cascade")

	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Rollback transaction on error
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	result, err := tx.Exec(`DELETE FROM blog_posts WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete authored posts: %w", err)
	}

	postsDeleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error checking rows affected: %w", err)
	}

	result, err = tx.Exec(`DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete account: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error checking rows affected: %w", err)
	}
	if affected == 0 {
		err = types.ErrNotFound
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return postsDeleted, nil
}
