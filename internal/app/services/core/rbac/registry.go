package rbac

import (
	"strings"

	"careportal-service/internal/app/models"
)

// permissionRegistry maps every role to its fixed capability set. It is built
// once at process start and never mutated afterwards; lookups on anything
// outside it deny.
var permissionRegistry = map[models.Role]map[models.Permission]struct{}{
	models.RolePatient: permissionSet(
		models.PermissionViewAppointments,
		models.PermissionViewMedications,
		models.PermissionUseAssistant,
	),
	models.RoleDoctor: permissionSet(
		models.PermissionViewMedicalRecord,
		models.PermissionEditMedicalRecord,
		models.PermissionViewAppointments,
		models.PermissionManageAppointments,
		models.PermissionViewMedications,
		models.PermissionManageMedications,
		models.PermissionUseAssistant,
	),
	models.RoleNurse: permissionSet(
		models.PermissionViewMedicalRecord,
		models.PermissionViewAppointments,
		models.PermissionViewMedications,
		models.PermissionManageMedications,
		models.PermissionUseAssistant,
	),
	models.RoleSecretary: permissionSet(
		models.PermissionViewAppointments,
		models.PermissionManageAppointments,
		models.PermissionManageBloodDonation,
		models.PermissionUseAssistant,
	),
	models.RoleAdmin: permissionSet(
		models.PermissionViewMedicalRecord,
		models.PermissionManageUsers,
		models.PermissionViewAppointments,
		models.PermissionManageAppointments,
		models.PermissionViewMedications,
		models.PermissionManageMedications,
		models.PermissionManageBloodDonation,
		models.PermissionUseAssistant,
	),
}

func permissionSet(permissions ...models.Permission) map[models.Permission]struct{} {
	set := make(map[models.Permission]struct{}, len(permissions))
	for _, permission := range permissions {
		set[permission] = struct{}{}
	}
	return set
}

// HasPermission reports whether the role's configured set contains the
// permission. Role matching is case-insensitive to tolerate casing drift
// between storage and the enum; unknown roles and unknown permissions deny.
func HasPermission(role models.Role, permission models.Permission) bool {
	normalized := models.Role(strings.ToLower(string(role)))
	permissions, ok := permissionRegistry[normalized]
	if !ok {
		return false
	}
	_, granted := permissions[permission]
	return granted
}
