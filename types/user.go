package types

import (
	"time"

	"github.com/google/uuid"
)

// Role - user role enum type
type Role string

const (
	RoleUser   Role = "User"
	RoleEditor Role = "Editor"
	RoleAdmin  Role = "Admin"
)

// roleOrder defines the total order User < Editor < Admin.
var roleOrder = map[Role]int{
	RoleUser:   0,
	RoleEditor: 1,
	RoleAdmin:  2,
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	_, ok := roleOrder[r]
	return ok
}

// AtLeast reports whether r sits at or above minimum in the role order.
func (r Role) AtLeast(minimum Role) bool {
	return roleOrder[r] >= roleOrder[minimum]
}

// Table Model (database/migrations/00001_auth.sql)
type User struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Email          string    `db:"email" json:"email"`
	Username       string    `db:"username" json:"username"`
	HashedPassword string    `db:"hashed_password" json:"-"`
	Membership     Role      `db:"membership" json:"membership"`
	EmailVerified  bool      `db:"email_verified" json:"emailVerified"`
	RefreshToken   string    `db:"refresh_token" json:"-"`
	AvatarURL      string    `db:"avatar_url" json:"avatarUrl,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	LastLogin      time.Time `db:"last_login" json:"lastLogin"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}

// IsEmployee is derived, never stored: editors and admins are staff.
func (u *User) IsEmployee() bool {
	return u.Membership == RoleEditor || u.Membership == RoleAdmin
}

// UserProfileResponse - secure model to return user profile
type UserProfileResponse struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Membership    Role      `json:"membership"`
	IsEmployee    bool      `json:"isEmployee"`
	EmailVerified bool      `json:"emailVerified"`
	AvatarURL     string    `json:"avatarUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	LastLogin     time.Time `json:"lastLogin"`
}

// NewUserProfileResponse strips credentials and session state from a user row.
func NewUserProfileResponse(u *User) UserProfileResponse {
	return UserProfileResponse{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		Membership:    u.Membership,
		IsEmployee:    u.IsEmployee(),
		EmailVerified: u.EmailVerified,
		AvatarURL:     u.AvatarURL,
		CreatedAt:     u.CreatedAt,
		LastLogin:     u.LastLogin,
	}
}

// UserCreateRequest - user creation request
type UserCreateRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// UserLoginRequest - user login request
type UserLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// PasswordUpdateRequest - password change request
type PasswordUpdateRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// StaffPromoteRequest - promote a regular user into the staff pool
type StaffPromoteRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
	Role   Role   `json:"role" binding:"required"`
}

// StaffRoleUpdateRequest - change an existing employee's role
type StaffRoleUpdateRequest struct {
	Role Role `json:"role" binding:"required"`
}
