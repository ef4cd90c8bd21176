package UserRepository

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanay/backend-blog-core/types"
)

// Signup never writes a role: the INSERT carries only credentials and the
// database default makes every new account a plain user outside the staff
// pool.
func TestCreateNewUserStartsAsRegularUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	userID := uuid.New()
	now := time.Now()

	columns := []string{
		"id", "email", "username", "hashed_password", "membership",
		"email_verified", "refresh_token", "avatar_url",
		"created_at", "last_login", "updated_at",
	}
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (email, username, hashed_password) VALUES ($1, $2, $3) RETURNING *`)).
		WithArgs("jane@example.com", "jane", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			userID.String(), "jane@example.com", "jane", "bcrypt-hash", string(types.RoleUser),
			false, "", "",
			now, now, now,
		))

	user, err := repo.CreateNewUser(types.UserCreateRequest{
		Username: "jane",
		Email:    "jane@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	assert.Equal(t, userID, user.ID)
	assert.Equal(t, types.RoleUser, user.Membership)
	assert.False(t, user.IsEmployee())
	assert.False(t, user.EmailVerified)
	assert.Empty(t, user.RefreshToken)
	assert.NoError(t, mock.ExpectationsWereMet())
}
