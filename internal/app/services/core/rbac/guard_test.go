package rbac

import (
	"testing"

	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

func TestRequireAuthenticated(t *testing.T) {
	t.Run("Nil Principal Is Unauthenticated", func(t *testing.T) {
		principal, err := RequireAuthenticated(nil)
		assert.Nil(t, principal)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusUnauthorized))
	})

	t.Run("Principal Passes Through", func(t *testing.T) {
		principal := &models.Principal{UserID: "u-1", Role: models.RolePatient}
		got, err := RequireAuthenticated(principal)
		assert.NoError(t, err)
		assert.Same(t, principal, got)
	})
}

func TestRequirePermission(t *testing.T) {
	t.Run("Nil Principal Fails With 401 Not 403", func(t *testing.T) {
		err := RequirePermission(nil, models.PermissionViewMedicalRecord)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusUnauthorized))
		assert.False(t, exceptions.IsStatus(err, constvars.StatusForbidden))
	})

	t.Run("Missing Permission Fails With 403", func(t *testing.T) {
		principal := &models.Principal{UserID: "u-1", Role: models.RolePatient}
		err := RequirePermission(principal, models.PermissionEditMedicalRecord)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusForbidden))
	})

	t.Run("Granted Permission Passes", func(t *testing.T) {
		principal := &models.Principal{UserID: "u-2", Role: models.RoleDoctor}
		err := RequirePermission(principal, models.PermissionEditMedicalRecord)
		assert.NoError(t, err)
	})

	t.Run("Unknown Role Fails With 403", func(t *testing.T) {
		principal := &models.Principal{UserID: "u-3", Role: models.Role("intern")}
		err := RequirePermission(principal, models.PermissionViewAppointments)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusForbidden))
	})
}
