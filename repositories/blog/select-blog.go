package BlogRepository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/okanay/backend-blog-core/types"
	"github.com/okanay/backend-blog-core/utils"
)

func (r *Repository) SelectBlogByID(blogID uuid.UUID) (*types.BlogPost, error) {
	defer utils.TimeTrack(time.Now(), "Blog -> Select Blog By ID")

	var blog types.BlogPost

	query := `SELECT * FROM blog_posts WHERE id = $1`

	row := r.db.QueryRow(query, blogID)
	err := utils.ScanStructByDBTags(row, &blog)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &blog, nil
}

// SelectBlogCards returns the published list projection, newest first.
func (r *Repository) SelectBlogCards(limit, offset int) ([]types.BlogCardView, error) {
	defer utils.TimeTrack(time.Now(), "Blog -> Select Blog Cards")

	var cards []types.BlogCardView

	query := `
		SELECT id, user_id, slug, title, description, image, status, created_at
		FROM blog_posts
		WHERE status = $1
		ORDER BY published_at DESC NULLS LAST
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(query, types.BlogStatusPublished, limit, offset)
	if err != nil {
		return cards, err
	}
	defer rows.Close()

	for rows.Next() {
		var card types.BlogCardView
		if err := utils.ScanStructByDBTagsForRows(rows, &card); err != nil {
			return cards, err
		}
		cards = append(cards, card)
	}

	if err = rows.Err(); err != nil {
		return cards, err
	}

	return cards, nil
}
