package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanay/backend-blog-core/types"
)

type fakeCascadeStore struct {
	postsDeleted int64
	err          error
	calls        int
}

func (f *fakeCascadeStore) DeleteAccountCascade(userID uuid.UUID) (int64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return f.postsDeleted, nil
}

type fakeAvatarStore struct {
	deleted []string
	err     error
}

func (f *fakeAvatarStore) DeleteObjectByURL(ctx context.Context, url string) error {
	f.deleted = append(f.deleted, url)
	return f.err
}

type fakePublisher struct {
	events []map[string]any
	err    error
}

func (f *fakePublisher) PublishEvent(ctx context.Context, key string, payload map[string]any) error {
	f.events = append(f.events, payload)
	return f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDeleteCascadeSuccess(t *testing.T) {
	store := &fakeCascadeStore{postsDeleted: 3}
	avatars := &fakeAvatarStore{}
	events := &fakePublisher{}
	coordinator := NewAccountDeletionCoordinator(store, avatars, events, discardLogger())

	account := types.User{
		ID:        uuid.New(),
		Username:  "jane",
		AvatarURL: "https://cdn.example.com/avatars/jane.png",
	}

	postsDeleted, err := coordinator.Delete(context.Background(), account)
	require.NoError(t, err)

	assert.Equal(t, int64(3), postsDeleted)
	assert.Equal(t, []string{account.AvatarURL}, avatars.deleted)
	require.Len(t, events.events, 1)
	assert.Equal(t, "account_deleted", events.events[0]["type"])
	assert.Equal(t, int64(3), events.events[0]["postsDeleted"])
}

func TestDeleteCascadeFailureWrapsError(t *testing.T) {
	store := &fakeCascadeStore{err: errors.New("connection reset")}
	events := &fakePublisher{}
	coordinator := NewAccountDeletionCoordinator(store, nil, events, discardLogger())

	_, err := coordinator.Delete(context.Background(), types.User{ID: uuid.New()})
	assert.ErrorIs(t, err, types.ErrDeletionFailed)

	// Nothing committed, nothing announced.
	assert.Empty(t, events.events)
}

func TestDeleteCascadeNotFoundPassesThrough(t *testing.T) {
	store := &fakeCascadeStore{err: types.ErrNotFound}
	coordinator := NewAccountDeletionCoordinator(store, nil, nil, discardLogger())

	_, err := coordinator.Delete(context.Background(), types.User{ID: uuid.New()})
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.NotErrorIs(t, err, types.ErrDeletionFailed)
}

func TestDeleteSurvivesAvatarAndEventFailures(t *testing.T) {
	store := &fakeCascadeStore{postsDeleted: 1}
	avatars := &fakeAvatarStore{err: errors.New("object storage down")}
	events := &fakePublisher{err: errors.New("broker unreachable")}
	coordinator := NewAccountDeletionCoordinator(store, avatars, events, discardLogger())

	account := types.User{ID: uuid.New(), AvatarURL: "https://cdn.example.com/a.png"}

	postsDeleted, err := coordinator.Delete(context.Background(), account)
	require.NoError(t, err)
	assert.Equal(t, int64(1), postsDeleted)
}

func TestDeleteSkipsAvatarWhenUnset(t *testing.T) {
	store := &fakeCascadeStore{}
	avatars := &fakeAvatarStore{}
	coordinator := NewAccountDeletionCoordinator(store, avatars, nil, discardLogger())

	_, err := coordinator.Delete(context.Background(), types.User{ID: uuid.New()})
	require.NoError(t, err)
	assert.Empty(t, avatars.deleted)
}
