package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/okanay/backend-blog-core/configs"
	cache "github.com/okanay/backend-blog-core/services/cache"
	"github.com/okanay/backend-blog-core/types"
)

type staffUserStore interface {
	SelectByID(id uuid.UUID) (types.User, error)
	SelectEmployees() ([]types.User, error)
	UpdateRole(userID uuid.UUID, role types.Role) error
}

// StaffLifecycle moves accounts between the regular-user and employee
// partitions. Every mutation invalidates the cached employee list, and a
// role change kills the target's session (the repository clears the
// refresh-token slot together with the role).
type StaffLifecycle struct {
	users   staffUserStore
	deleter *AccountDeletionCoordinator
	cache   *cache.Cache
	events  eventPublisher
	logger  *slog.Logger
}

func NewStaffLifecycle(users staffUserStore, deleter *AccountDeletionCoordinator, listCache *cache.Cache, events eventPublisher, logger *slog.Logger) *StaffLifecycle {
	return &StaffLifecycle{users: users, deleter: deleter, cache: listCache, events: events, logger: logger}
}

// Promote lifts a regular user into the staff partition.
func (s *StaffLifecycle) Promote(targetID uuid.UUID, newRole types.Role) (types.User, error) {
	if newRole != types.RoleEditor && newRole != types.RoleAdmin {
		return types.User{}, fmt.Errorf("promotion must target Editor or Admin: %w", types.ErrForbidden)
	}

	target, err := s.users.SelectByID(targetID)
	if err != nil {
		return types.User{}, err
	}
	if target.IsEmployee() {
		return types.User{}, types.ErrAlreadyEmployee
	}

	if err := s.users.UpdateRole(targetID, newRole); err != nil {
		return types.User{}, err
	}

	target.Membership = newRole
	s.invalidate()
	s.publish("staff_promoted", target)

	return target, nil
}

// UpdateRole moves an employee between Editor and Admin. It never demotes
// back to User and never lets an admin strip their own admin role; setting
// your own role to Admin again is a harmless no-op.
func (s *StaffLifecycle) UpdateRole(actorID, targetID uuid.UUID, newRole types.Role) (types.User, error) {
	if actorID == targetID && newRole == types.RoleAdmin {
		return s.users.SelectByID(targetID)
	}
	if !CanChangeOwnRole(actorID, targetID, newRole) {
		return types.User{}, fmt.Errorf("admins must stay as admins: %w", types.ErrForbidden)
	}
	if newRole == types.RoleUser && !CanDemoteToUser(newRole) {
		return types.User{}, fmt.Errorf("employees cannot be demoted back to user, remove them instead: %w", types.ErrForbidden)
	}
	if newRole != types.RoleEditor && newRole != types.RoleAdmin {
		return types.User{}, fmt.Errorf("unknown role %q: %w", newRole, types.ErrForbidden)
	}

	target, err := s.users.SelectByID(targetID)
	if err != nil {
		return types.User{}, err
	}
	if !target.IsEmployee() {
		return types.User{}, types.ErrNotEmployee
	}

	if err := s.users.UpdateRole(targetID, newRole); err != nil {
		return types.User{}, err
	}

	target.Membership = newRole
	s.invalidate()
	s.publish("staff_role_changed", target)

	return target, nil
}

// Remove retires an employee: the account and its authored content are
// deleted together, not demoted back into the user pool. The self-check
// runs before any storage access.
func (s *StaffLifecycle) Remove(ctx context.Context, actorID, targetID uuid.UUID) (int64, error) {
	if !CanRemoveSelfAsEmployee(actorID, targetID) {
		return 0, fmt.Errorf("you cannot remove yourself as staff: %w", types.ErrForbidden)
	}

	target, err := s.users.SelectByID(targetID)
	if err != nil {
		return 0, err
	}
	if !target.IsEmployee() {
		return 0, types.ErrNotEmployee
	}

	postsDeleted, err := s.deleter.Delete(ctx, target)
	if err != nil {
		return 0, err
	}

	s.invalidate()
	s.publish("staff_removed", target)

	return postsDeleted, nil
}

// Employees returns the staff list straight from storage; the handler
// layer caches the rendered list and mutations here invalidate it.
func (s *StaffLifecycle) Employees() ([]types.User, error) {
	return s.users.SelectEmployees()
}

func (s *StaffLifecycle) invalidate() {
	if s.cache != nil {
		s.cache.Delete(cache.KeyEmployees)
	}
}

func (s *StaffLifecycle) publish(eventType string, target types.User) {
	if s.events == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), configs.EVENT_PUBLISH_TIMEOUT)
	defer cancel()

	err := s.events.PublishEvent(ctx, target.ID.String(), map[string]any{
		"type":     eventType,
		"userId":   target.ID.String(),
		"username": target.Username,
		"role":     target.Membership,
	})
	if err != nil {
		s.logger.Warn("failed to publish staff event", "type", eventType, "user_id", target.ID, "error", err)
	}
}
