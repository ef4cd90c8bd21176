package services

import (
	"github.com/google/uuid"

	"github.com/okanay/backend-blog-core/types"
)

// Authorization decisions are pure functions over plain values. Nothing in
// this file touches storage or the request; callers fetch the inputs and
// translate a false into the HTTP response.

// IsAtLeast reports whether role sits at or above minimum in the order
// User < Editor < Admin.
func IsAtLeast(role, minimum types.Role) bool {
	return role.AtLeast(minimum)
}

// CanModifyOwnResource is the bare ownership check.
func CanModifyOwnResource(actorID, ownerID uuid.UUID) bool {
	return actorID == ownerID
}

// CanEditPostContent allows content edits (title, body, taxonomy, image)
// to the author only. Role grants no override here, admins included.
func CanEditPostContent(actorID uuid.UUID, actorRole types.Role, post *types.BlogPost) bool {
	return actorID == post.UserID
}

// CanChangePostStatus allows status-only changes to the author, or to an
// admin over anyone's post. This is the single privileged override admins
// hold over content they do not own.
func CanChangePostStatus(actorID uuid.UUID, actorRole types.Role, post *types.BlogPost) bool {
	return actorID == post.UserID || actorRole == types.RoleAdmin
}

// CanDeletePost allows deletion to the author or to an admin.
func CanDeletePost(actorID uuid.UUID, actorRole types.Role, post *types.BlogPost) bool {
	return actorID == post.UserID || actorRole == types.RoleAdmin
}

// CanChangeOwnRole blocks an admin from stripping their own admin role
// through the generic update path. Changing yourself to admin is allowed
// (it is a no-op for an admin actor).
func CanChangeOwnRole(actorID, targetID uuid.UUID, newRole types.Role) bool {
	if actorID == targetID && newRole != types.RoleAdmin {
		return false
	}
	return true
}

// CanDemoteToUser: the staff-update path never demotes back to User.
// Leaving the staff partition goes through removal, which deletes the
// account outright.
func CanDemoteToUser(newRole types.Role) bool {
	return false
}

// CanRemoveSelfAsEmployee: an admin never removes themselves as staff;
// another admin has to do it.
func CanRemoveSelfAsEmployee(actorID, targetID uuid.UUID) bool {
	return actorID != targetID
}
