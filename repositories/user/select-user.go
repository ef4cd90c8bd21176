package UserRepository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/okanay/backend-blog-core/types"
	"github.com/okanay/backend-blog-core/utils"
)

// SelectByUsername matches case-insensitively; usernames are unique on
// their lowercased form.
func (r *Repository) SelectByUsername(username string) (types.User, error) {
	defer utils.TimeTrack(time.Now(), "User -> Select User By Username")

	var user types.User

	query := `SELECT * FROM users WHERE LOWER(username) = LOWER($1)`

	row := r.db.QueryRow(query, username)
	err := utils.ScanStructByDBTags(row, &user)
	if errors.Is(err, sql.ErrNoRows) {
		return user, types.ErrNotFound
	}
	if err != nil {
		return user, err
	}

	return user, nil
}

func (r *Repository) SelectByID(id uuid.UUID) (types.User, error) {
	defer utils.TimeTrack(time.Now(), "User -> Select User By ID")

	var user types.User

	query := `SELECT * FROM users WHERE id = $1`

	row := r.db.QueryRow(query, id)
	err := utils.ScanStructByDBTags(row, &user)
	if errors.Is(err, sql.ErrNoRows) {
		return user, types.ErrNotFound
	}
	if err != nil {
		return user, err
	}

	return user, nil
}

// SelectByRefreshToken finds the account whose stored slot holds exactly
// this token. The stored copy is the source of truth for session validity;
// a signature-valid token that is not stored anywhere is a revoked session.
func (r *Repository) SelectByRefreshToken(token string) (types.User, error) {
	defer utils.TimeTrack(time.Now(), "User -> Select User By Refresh Token")

	var user types.User

	query := `SELECT * FROM users WHERE refresh_token = $1 AND refresh_token <> ''`

	row := r.db.QueryRow(query, token)
	err := utils.ScanStructByDBTags(row, &user)
	if errors.Is(err, sql.ErrNoRows) {
		return user, types.ErrNotFound
	}
	if err != nil {
		return user, err
	}

	return user, nil
}

// SelectEmployees lists editor and admin accounts for the staff views.
func (r *Repository) SelectEmployees() ([]types.User, error) {
	defer utils.TimeTrack(time.Now(), "User -> Select Employees")

	var users []types.User

	query := `SELECT * FROM users WHERE membership IN ($1, $2) ORDER BY created_at`

	rows, err := r.db.Query(query, types.RoleEditor, types.RoleAdmin)
	if err != nil {
		return users, err
	}
	defer rows.Close()

	for rows.Next() {
		var user types.User
		if err := utils.ScanStructByDBTagsForRows(rows, &user); err != nil {
			return users, err
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return users, err
	}

	return users, nil
}
