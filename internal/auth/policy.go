package auth

import (
	"github.com/google/uuid"

	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/user"
)

// CurrentUser is the resolved caller identity threaded through a request.
// Handlers receive it from the auth middleware instead of re-parsing the
// token themselves.
type CurrentUser struct {
	ID   uuid.UUID
	Role user.Role
}

// IsAdmin reports whether the caller holds the admin role
func (c CurrentUser) IsAdmin() bool {
	return c.Role == user.RoleAdmin
}

// Assignable is any resource bound to a single worker by an admin
// (tasks and waste reports).
type Assignable interface {
	IsAssignee(userID uuid.UUID) bool
}

// CanActOn is the shared ownership predicate for assigned resources: an
// admin may always act, otherwise only the resource's assigned worker may.
func CanActOn(caller CurrentUser, resource Assignable) bool {
	if caller.IsAdmin() {
		return true
	}
	return resource.IsAssignee(caller.ID)
}
