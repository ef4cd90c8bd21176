package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/okanay/backend-blog-core/configs"
	"github.com/okanay/backend-blog-core/types"
)

type deletionUserStore interface {
	DeleteAccountCascade(userID uuid.UUID) (int64, error)
}

type avatarStore interface {
	DeleteObjectByURL(ctx context.Context, url string) error
}

type eventPublisher interface {
	PublishEvent(ctx context.Context, key string, payload map[string]any) error
}

// AccountDeletionCoordinator is the one place that mutates two collections
// at once: an account and everything it authored go in a single
// transaction. Callers enforce the admin-self-delete rule before invoking
// Delete; this type assumes the decision was already made.
type AccountDeletionCoordinator struct {
	users   deletionUserStore
	avatars avatarStore
	events  eventPublisher
	logger  *slog.Logger
}

func NewAccountDeletionCoordinator(users deletionUserStore, avatars avatarStore, events eventPublisher, logger *slog.Logger) *AccountDeletionCoordinator {
	return &AccountDeletionCoordinator{users: users, avatars: avatars, events: events, logger: logger}
}

// Delete runs the atomic cascade, then cleans up external state
// best-effort. A storage failure inside the cascade rolls everything back
// and surfaces as ErrDeletionFailed; a failure after commit (avatar object,
// event) is logged and swallowed, the database is the authoritative state.
func (c *AccountDeletionCoordinator) Delete(ctx context.Context, account types.User) (int64, error) {
	postsDeleted, err := c.users.DeleteAccountCascade(account.ID)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %v", types.ErrDeletionFailed, err)
	}

	if account.AvatarURL != "" && c.avatars != nil {
		if err := c.avatars.DeleteObjectByURL(ctx, account.AvatarURL); err != nil {
			c.logger.Warn("failed to delete avatar object", "user_id", account.ID, "error", err)
		}
	}

	c.publish(account, postsDeleted)

	return postsDeleted, nil
}

func (c *AccountDeletionCoordinator) publish(account types.User, postsDeleted int64) {
	if c.events == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), configs.EVENT_PUBLISH_TIMEOUT)
	defer cancel()

	err := c.events.PublishEvent(ctx, account.ID.String(), map[string]any{
		"type":         "account_deleted",
		"userId":       account.ID.String(),
		"username":     account.Username,
		"postsDeleted": postsDeleted,
	})
	if err != nil {
		c.logger.Warn("failed to publish account_deleted event", "user_id", account.ID, "error", err)
	}
}
