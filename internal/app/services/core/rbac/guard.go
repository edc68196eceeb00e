package rbac

import (
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/exceptions"
)

// RequireAuthenticated fails with a 401 CustomError when the resolver produced
// no principal. Callers redirect to the login entry point on that failure
// instead of rendering protected content.
func RequireAuthenticated(principal *models.Principal) (*models.Principal, error) {
	if principal == nil {
		return nil, exceptions.ErrUnauthenticated(nil)
	}
	return principal, nil
}

// RequirePermission fails with a 403 CustomError when the registry denies the
// permission for the principal's role. Authentication is always checked first:
// a nil principal yields 401 here as well, so a permission lookup never runs
// against a missing role.
func RequirePermission(principal *models.Principal, permission models.Permission) error {
	if _, err := RequireAuthenticated(principal); err != nil {
		return err
	}
	if !HasPermission(principal.Role, permission) {
		return exceptions.ErrForbidden(nil)
	}
	return nil
}
