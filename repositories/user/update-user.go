package UserRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/okanay/backend-blog-core/types"
	"github.com/okanay/backend-blog-core/utils"
)

// UpdateRefreshToken overwrites the single session slot. Concurrent logins
// race here and the last write wins; the earlier session dies with its slot.
func (r *Repository) UpdateRefreshToken(userID uuid.UUID, token string) error {
	defer utils.TimeTrack(time.Now(), "User -> Update Refresh Token")

	query := `UPDATE users SET refresh_token = $1, updated_at = NOW() WHERE id = $2`

	_, err := r.db.Exec(query, token, userID)
	return err
}

// ClearRefreshTokenByValue revokes whichever session currently holds this
// token. Clearing an already-cleared slot matches zero rows, which is fine:
// logout is idempotent.
func (r *Repository) ClearRefreshTokenByValue(token string) error {
	defer utils.TimeTrack(time.Now(), "User -> Clear Refresh Token")

	query := `UPDATE users SET refresh_token = '', updated_at = NOW() WHERE refresh_token = $1`

	_, err := r.db.Exec(query, token)
	return err
}

func (r *Repository) UpdateLastLogin(userID uuid.UUID, at time.Time) error {
	defer utils.TimeTrack(time.Now(), "User -> Update Last Login")

	query := `UPDATE users SET last_login = $1, updated_at = NOW() WHERE id = $2`

	_, err := r.db.Exec(query, at, userID)
	return err
}

// UpdateRole changes membership and clears the session slot in the same
// statement, so stale role claims cannot outlive the access token window.
func (r *Repository) UpdateRole(userID uuid.UUID, role types.Role) error {
	defer utils.TimeTrack(time.Now(), "User -> Update Role")

	query := `UPDATE users SET membership = $1, refresh_token = '', updated_at = NOW() WHERE id = $2`

	result, err := r.db.Exec(query, role, userID)
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

func (r *Repository) UpdatePassword(userID uuid.UUID, hashedPassword string) error {
	defer utils.TimeTrack(time.Now(), "User -> Update Password")

	query := `UPDATE users SET hashed_password = $1, updated_at = NOW() WHERE id = $2`

	_, err := r.db.Exec(query, hashedPassword, userID)
	return err
}

func (r *Repository) UpdateAvatarURL(userID uuid.UUID, url string) error {
	defer utils.TimeTrack(time.Now(), "User -> Update Avatar URL")

	query := `UPDATE users SET avatar_url = $1, updated_at = NOW() WHERE id = $2`

	_, err := r.db.Exec(query, url, userID)
	return err
}
