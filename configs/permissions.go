package configs

import (
	"github.com/okanay/backend-blog-core/types"
)

type Permission string

const (
	PermissionCreatePost  Permission = "create-post"
	PermissionEditPost    Permission = "edit-post"
	PermissionDeletePost  Permission = "delete-post"
	PermissionManageStaff Permission = "manage-staff"
)

var RolePermissions = map[types.Role][]Permission{
	types.RoleUser: {},
	// Editors hold delete-post for their own content; the ownership check
	// in the handler decides whose posts they may actually touch.
	types.RoleEditor: {
		PermissionCreatePost,
		PermissionEditPost,
		PermissionDeletePost,
	},
	types.RoleAdmin: {
		PermissionCreatePost,
		PermissionEditPost,
		PermissionDeletePost,
		PermissionManageStaff,
	},
}
