package BlogRepository

import (
	"time"

	"github.com/okanay/backend-blog-core/types"
	"github.com/okanay/backend-blog-core/utils"
)

func (r *Repository) CreateCategory(request types.CategoryInput) (types.CategoryView, error) {
	defer utils.TimeTrack(time.Now(), "Blog -> Create Category")

	var view types.CategoryView

	query := `INSERT INTO categories (name, value) VALUES ($1, $2) RETURNING name, value`

	err := r.db.QueryRow(query, request.Name, request.Value).Scan(&view.Name, &view.Value)
	if err != nil {
		return types.CategoryView{}, err
	}

	return view, nil
}

func (r *Repository) CreateTag(request types.TagInput) (types.TagView, error) {
	defer utils.TimeTrack(time.Now(), "Blog -> Create Tag")

	var view types.TagView

	query := `INSERT INTO tags (name, value) VALUES ($1, $2) RETURNING name, value`

	err := r.db.QueryRow(query, request.Name, request.Value).Scan(&view.Name, &view.Value)
	if err != nil {
		return types.TagView{}, err
	}

	return view, nil
}

func (r *Repository) SelectAllCategories() ([]types.CategoryView, error) {
	defer utils.TimeTrack(time.Now(), "Blog -> Select All Categories")

	return r.selectTaxonomy(`SELECT name, value FROM categories ORDER BY name`)
}

func (r *Repository) SelectAllTags() ([]types.TagView, error) {
	defer utils.TimeTrack(time.Now(), "Blog -> Select All Tags")

	views, err := r.selectTaxonomy(`SELECT name, value FROM tags ORDER BY name`)
	if err != nil {
		return nil, err
	}

	tags := make([]types.TagView, len(views))
	for i, view := range views {
		tags[i] = types.TagView(view)
	}
	return tags, nil
}

func (r *Repository) selectTaxonomy(query string) ([]types.CategoryView, error) {
	var views []types.CategoryView

	rows, err := r.db.Query(query)
	if err != nil {
		return views, err
	}
	defer rows.Close()

	for rows.Next() {
		var view types.CategoryView
		if err := rows.Scan(&view.Name, &view.Value); err != nil {
			return views, err
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return views, err
	}

	return views, nil
}

// DeleteTagByValue removes the tag record only. References on posts are
// purged afterwards by PurgeTagReferences; the two steps are deliberately
// not atomic, a dangling junction row is harmless and the purge is
// idempotent.
func (r *Repository) DeleteTagByValue(value string) error {
	defer utils.TimeTrack(time.Now(), "Blog -> Delete Tag")

	result, err := r.db.Exec(`DELETE FROM tags WHERE value = $1`, value)
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

// PurgeTagReferences removes a deleted tag from every post that carried it.
func (r *Repository) PurgeTagReferences(value string) (int64, error) {
	defer utils.TimeTrack(time.Now(), "Blog -> Purge Tag References")

	result, err := r.db.Exec(`DELETE FROM blog_tags WHERE tag_value = $1`, value)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
