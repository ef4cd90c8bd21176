package services

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/okanay/backend-blog-core/types"
	"github.com/okanay/backend-blog-core/utils"
)

// sessionUserStore is the slice of the user repository the session
// lifecycle needs.
type sessionUserStore interface {
	SelectByUsername(username string) (types.User, error)
	SelectByRefreshToken(token string) (types.User, error)
	UpdateRefreshToken(userID uuid.UUID, token string) error
	ClearRefreshTokenByValue(token string) error
	UpdateLastLogin(userID uuid.UUID, at time.Time) error
}

// SessionService owns login, refresh and logout. An account has at most one
// live session: the refresh-token slot on the user row.
type SessionService struct {
	users  sessionUserStore
	logger *slog.Logger
}

func NewSessionService(users sessionUserStore, logger *slog.Logger) *SessionService {
	return &SessionService{users: users, logger: logger}
}

// Login verifies credentials and opens a session. The new refresh token is
// persisted before anything is returned: a crash after persist leaves an
// orphaned slot the next login overwrites, a crash before persist leaves
// the client without a token the server would not recognize anyway. The
// returned error is ErrInvalidCredentials for unknown username and wrong
// password alike.
func (s *SessionService) Login(username, password string) (*types.SessionResult, error) {
	user, err := s.users.SelectByUsername(username)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil, types.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(password, user.HashedPassword) {
		return nil, types.ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateAccessToken(&user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	// Overwrites any previous session: a second login invalidates the first.
	if err := s.users.UpdateRefreshToken(user.ID, refreshToken); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.users.UpdateLastLogin(user.ID, now); err != nil {
		s.logger.Warn("failed to update last login", "user_id", user.ID, "error", err)
	}
	user.LastLogin = now

	return &types.SessionResult{
		User:         types.NewUserProfileResponse(&user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh mints a new access token from a still-valid refresh token. The
// stored slot is re-read here, not trusted from any earlier request, so a
// logout or deletion that races an in-flight refresh wins. The refresh
// token itself is not rotated.
func (s *SessionService) Refresh(refreshToken string) (*types.SessionResult, error) {
	if refreshToken == "" {
		return nil, types.ErrNoSession
	}

	user, err := s.users.SelectByRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			// Signature-valid but not stored anywhere means revoked, not
			// expired: logout and demotion land here.
			return nil, types.ErrSessionRevoked
		}
		return nil, err
	}

	if _, err := utils.ValidateRefreshToken(refreshToken); err != nil {
		return nil, types.ErrSessionExpired
	}

	accessToken, err := utils.GenerateAccessToken(&user)
	if err != nil {
		return nil, err
	}

	return &types.SessionResult{
		User:         types.NewUserProfileResponse(&user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout revokes the session holding this token. Calling it twice, or with
// no token at all, succeeds: there is nothing secret about being logged out.
func (s *SessionService) Logout(refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	return s.users.ClearRefreshTokenByValue(refreshToken)
}
