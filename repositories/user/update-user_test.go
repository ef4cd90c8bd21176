package UserRepository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanay/backend-blog-core/types"
)

// The role update must clear the session slot in the same statement; the
// two never change independently.
func TestUpdateRoleClearsSession(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	userID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET membership = $1, refresh_token = '', updated_at = NOW() WHERE id = $2`)).
		WithArgs(types.RoleAdmin, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.UpdateRole(userID, types.RoleAdmin)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRoleUnknownUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	userID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET membership = $1, refresh_token = '', updated_at = NOW() WHERE id = $2`)).
		WithArgs(types.RoleEditor, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateRole(userID, types.RoleEditor)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestClearRefreshTokenByValue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET refresh_token = '', updated_at = NOW() WHERE refresh_token = $1`)).
		WithArgs("some-refresh-token").
		WillReturnResult(sqlmock.NewResult(0, 0))

	// Zero matched rows is still a success: logout is idempotent.
	err = repo.ClearRefreshTokenByValue("some-refresh-token")
	assert.NoError(t, err)
}
