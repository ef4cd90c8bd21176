package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/okanay/backend-blog-core/types"
)

func TestIsAtLeast(t *testing.T) {
	assert.True(t, IsAtLeast(types.RoleAdmin, types.RoleEditor))
	assert.True(t, IsAtLeast(types.RoleEditor, types.RoleEditor))
	assert.True(t, IsAtLeast(types.RoleEditor, types.RoleUser))
	assert.False(t, IsAtLeast(types.RoleUser, types.RoleEditor))
	assert.False(t, IsAtLeast(types.RoleEditor, types.RoleAdmin))
}

func TestCanEditPostContent(t *testing.T) {
	author := uuid.New()
	admin := uuid.New()
	post := &types.BlogPost{ID: uuid.New(), UserID: author}

	assert.True(t, CanEditPostContent(author, types.RoleEditor, post))

	// Content edits have no role override. Not even for admins.
	assert.False(t, CanEditPostContent(admin, types.RoleAdmin, post))
	assert.False(t, CanEditPostContent(uuid.New(), types.RoleEditor, post))
}

func TestCanChangePostStatus(t *testing.T) {
	author := uuid.New()
	post := &types.BlogPost{ID: uuid.New(), UserID: author}

	assert.True(t, CanChangePostStatus(author, types.RoleEditor, post))
	assert.True(t, CanChangePostStatus(uuid.New(), types.RoleAdmin, post))
	assert.False(t, CanChangePostStatus(uuid.New(), types.RoleEditor, post))
}

func TestCanDeletePost(t *testing.T) {
	author := uuid.New()
	post := &types.BlogPost{ID: uuid.New(), UserID: author}

	assert.True(t, CanDeletePost(author, types.RoleEditor, post))
	assert.True(t, CanDeletePost(uuid.New(), types.RoleAdmin, post))
	assert.False(t, CanDeletePost(uuid.New(), types.RoleEditor, post))
}

func TestCanChangeOwnRole(t *testing.T) {
	self := uuid.New()
	other := uuid.New()

	// Changing someone else is fine; the employee check happens elsewhere.
	assert.True(t, CanChangeOwnRole(self, other, types.RoleEditor))
	assert.True(t, CanChangeOwnRole(self, other, types.RoleAdmin))

	// Re-asserting your own admin role is a harmless no-op.
	assert.True(t, CanChangeOwnRole(self, self, types.RoleAdmin))

	// Stripping your own admin role is not.
	assert.False(t, CanChangeOwnRole(self, self, types.RoleEditor))
	assert.False(t, CanChangeOwnRole(self, self, types.RoleUser))
}

func TestCanDemoteToUser(t *testing.T) {
	assert.False(t, CanDemoteToUser(types.RoleUser))
}

func TestCanRemoveSelfAsEmployee(t *testing.T) {
	self := uuid.New()

	assert.False(t, CanRemoveSelfAsEmployee(self, self))
	assert.True(t, CanRemoveSelfAsEmployee(self, uuid.New()))
}
