package models

// Role is a coarse category determining default capabilities. The set is fixed;
// anything outside it is treated as no role at all.
type Role string

const (
	RolePatient   Role = "patient"
	RoleDoctor    Role = "doctor"
	RoleNurse     Role = "nurse"
	RoleSecretary Role = "secretary"
	RoleAdmin     Role = "admin"
)

// Permission is a named capability checked against a role's configured set.
type Permission string

const (
	PermissionViewMedicalRecord   Permission = "VIEW_MEDICAL_RECORD"
	PermissionEditMedicalRecord   Permission = "EDIT_MEDICAL_RECORD"
	PermissionManageUsers         Permission = "MANAGE_USERS"
	PermissionViewAppointments    Permission = "VIEW_APPOINTMENTS"
	PermissionManageAppointments  Permission = "MANAGE_APPOINTMENTS"
	PermissionViewMedications     Permission = "VIEW_MEDICATIONS"
	PermissionManageMedications   Permission = "MANAGE_MEDICATIONS"
	PermissionManageBloodDonation Permission = "MANAGE_BLOOD_DONATION"
	PermissionUseAssistant        Permission = "USE_ASSISTANT"
)
