package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanay/backend-blog-core/configs"
	cache "github.com/okanay/backend-blog-core/services/cache"
	"github.com/okanay/backend-blog-core/types"
)

type fakeStaffStore struct {
	users       map[uuid.UUID]types.User
	selectCalls int
	roleUpdates map[uuid.UUID]types.Role
}

func newFakeStaffStore(users ...types.User) *fakeStaffStore {
	store := &fakeStaffStore{
		users:       make(map[uuid.UUID]types.User),
		roleUpdates: make(map[uuid.UUID]types.Role),
	}
	for _, u := range users {
		store.users[u.ID] = u
	}
	return store
}

func (f *fakeStaffStore) SelectByID(id uuid.UUID) (types.User, error) {
	f.selectCalls++
	user, ok := f.users[id]
	if !ok {
		return types.User{}, types.ErrNotFound
	}
	return user, nil
}

func (f *fakeStaffStore) SelectEmployees() ([]types.User, error) {
	var employees []types.User
	for _, u := range f.users {
		if u.IsEmployee() {
			employees = append(employees, u)
		}
	}
	return employees, nil
}

func (f *fakeStaffStore) UpdateRole(userID uuid.UUID, role types.Role) error {
	user, ok := f.users[userID]
	if !ok {
		return types.ErrNotFound
	}
	user.Membership = role
	user.RefreshToken = ""
	f.users[userID] = user
	f.roleUpdates[userID] = role
	return nil
}

func newStaffFixture(users ...types.User) (*StaffLifecycle, *fakeStaffStore, *fakeCascadeStore, *fakePublisher, *cache.Cache) {
	store := newFakeStaffStore(users...)
	cascade := &fakeCascadeStore{postsDeleted: 2}
	events := &fakePublisher{}
	listCache := cache.NewCache(configs.LIST_CACHE_EXPIRATION)
	deleter := NewAccountDeletionCoordinator(cascade, nil, nil, discardLogger())
	lifecycle := NewStaffLifecycle(store, deleter, listCache, events, discardLogger())
	return lifecycle, store, cascade, events, listCache
}

func TestPromoteRegularUser(t *testing.T) {
	target := types.User{ID: uuid.New(), Username: "newbie", Membership: types.RoleUser}
	lifecycle, store, _, events, listCache := newStaffFixture(target)
	listCache.Set(cache.KeyEmployees, []byte(`[]`))

	promoted, err := lifecycle.Promote(target.ID, types.RoleEditor)
	require.NoError(t, err)

	assert.Equal(t, types.RoleEditor, promoted.Membership)
	assert.Equal(t, types.RoleEditor, store.roleUpdates[target.ID])

	_, cached := listCache.Get(cache.KeyEmployees)
	assert.False(t, cached, "employee list cache should be invalidated")

	require.Len(t, events.events, 1)
	assert.Equal(t, "staff_promoted", events.events[0]["type"])
}

func TestPromoteRejectsUserRole(t *testing.T) {
	target := types.User{ID: uuid.New(), Membership: types.RoleUser}
	lifecycle, store, _, _, _ := newStaffFixture(target)

	_, err := lifecycle.Promote(target.ID, types.RoleUser)
	assert.ErrorIs(t, err, types.ErrForbidden)
	assert.Empty(t, store.roleUpdates)
}

func TestPromoteAlreadyEmployee(t *testing.T) {
	target := types.User{ID: uuid.New(), Membership: types.RoleEditor}
	lifecycle, store, _, _, _ := newStaffFixture(target)

	_, err := lifecycle.Promote(target.ID, types.RoleAdmin)
	assert.ErrorIs(t, err, types.ErrAlreadyEmployee)
	assert.Empty(t, store.roleUpdates)
}

func TestUpdateRoleEditorToAdmin(t *testing.T) {
	actor := uuid.New()
	target := types.User{ID: uuid.New(), Username: "ed", Membership: types.RoleEditor, RefreshToken: "live-session"}
	lifecycle, store, _, events, _ := newStaffFixture(target)

	updated, err := lifecycle.UpdateRole(actor, target.ID, types.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, types.RoleAdmin, updated.Membership)
	assert.Equal(t, types.RoleAdmin, store.roleUpdates[target.ID])

	// The role change kills the target's live session.
	assert.Empty(t, store.users[target.ID].RefreshToken)

	require.Len(t, events.events, 1)
	assert.Equal(t, "staff_role_changed", events.events[0]["type"])
}

func TestUpdateRoleSelfToAdminIsNoOp(t *testing.T) {
	admin := types.User{ID: uuid.New(), Membership: types.RoleAdmin, RefreshToken: "live-session"}
	lifecycle, store, _, events, _ := newStaffFixture(admin)

	user, err := lifecycle.UpdateRole(admin.ID, admin.ID, types.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, types.RoleAdmin, user.Membership)
	assert.Empty(t, store.roleUpdates, "no-op must not touch the role")
	assert.Equal(t, "live-session", store.users[admin.ID].RefreshToken)
	assert.Empty(t, events.events)
}

func TestUpdateRoleSelfDemotionBlocked(t *testing.T) {
	admin := types.User{ID: uuid.New(), Membership: types.RoleAdmin}
	lifecycle, store, _, _, _ := newStaffFixture(admin)

	_, err := lifecycle.UpdateRole(admin.ID, admin.ID, types.RoleEditor)
	assert.ErrorIs(t, err, types.ErrForbidden)
	assert.Empty(t, store.roleUpdates)
}

func TestUpdateRoleNeverDemotesToUser(t *testing.T) {
	actor := uuid.New()
	target := types.User{ID: uuid.New(), Membership: types.RoleEditor}
	lifecycle, store, _, _, _ := newStaffFixture(target)

	_, err := lifecycle.UpdateRole(actor, target.ID, types.RoleUser)
	assert.ErrorIs(t, err, types.ErrForbidden)
	assert.Empty(t, store.roleUpdates)
}

func TestUpdateRoleNonEmployee(t *testing.T) {
	actor := uuid.New()
	target := types.User{ID: uuid.New(), Membership: types.RoleUser}
	lifecycle, _, _, _, _ := newStaffFixture(target)

	_, err := lifecycle.UpdateRole(actor, target.ID, types.RoleEditor)
	assert.ErrorIs(t, err, types.ErrNotEmployee)
}

func TestRemoveEmployeeDeletesAccount(t *testing.T) {
	actor := uuid.New()
	target := types.User{ID: uuid.New(), Username: "ed", Membership: types.RoleEditor}
	lifecycle, _, cascade, events, _ := newStaffFixture(target)

	postsDeleted, err := lifecycle.Remove(context.Background(), actor, target.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(2), postsDeleted)
	assert.Equal(t, 1, cascade.calls)
	require.Len(t, events.events, 1)
	assert.Equal(t, "staff_removed", events.events[0]["type"])
}

func TestRemoveSelfBlockedBeforeStorage(t *testing.T) {
	admin := types.User{ID: uuid.New(), Membership: types.RoleAdmin}
	lifecycle, store, cascade, _, _ := newStaffFixture(admin)

	_, err := lifecycle.Remove(context.Background(), admin.ID, admin.ID)
	assert.ErrorIs(t, err, types.ErrForbidden)

	// The self-check decides before any storage access.
	assert.Zero(t, store.selectCalls)
	assert.Zero(t, cascade.calls)
}

func TestRemoveNonEmployee(t *testing.T) {
	actor := uuid.New()
	target := types.User{ID: uuid.New(), Membership: types.RoleUser}
	lifecycle, _, cascade, _, _ := newStaffFixture(target)

	_, err := lifecycle.Remove(context.Background(), actor, target.ID)
	assert.ErrorIs(t, err, types.ErrNotEmployee)
	assert.Zero(t, cascade.calls)
}
