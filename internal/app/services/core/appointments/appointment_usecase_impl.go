package appointments

import (
	"context"
	"time"

	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/app/services/core/rbac"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		Log:                   logger,
	}
}

// BookAppointment creates a booking for the calling patient. Only patients
// book for themselves; staff manage schedules through their own listing and
// cancellation paths.
func (uc *appointmentUsecase) BookAppointment(ctx context.Context, principal *models.Principal, request *requests.BookAppointment) (*responses.Appointment, error) {
	principal, err := rbac.RequireAuthenticated(principal)
	if err != nil {
		return nil, err
	}
	if principal.Role != models.RolePatient || principal.PatientID == "" {
		return nil, exceptions.ErrForbidden(nil)
	}

	uc.Log.Info("appointmentUsecase.BookAppointment called",
		zap.String(constvars.LoggingPatientIDKey, principal.PatientID),
	)

	startTime, err := time.Parse(time.RFC3339, request.StartTime)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	now := time.Now().UTC()
	appointment := &models.Appointment{
		PatientID: principal.PatientID,
		DoctorID:  request.DoctorID,
		Reason:    request.Reason,
		Status:    constvars.AppointmentStatusBooked,
		StartTime: startTime,
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}
	appointment.ID = appointmentID

	uc.Log.Info("appointmentUsecase.BookAppointment succeeded",
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	return mapAppointmentToResponse(appointment), nil
}

// ListAppointments returns the caller's own schedule: the patient's bookings,
// the doctor's booked slots, or every appointment for roles holding the
// manage-appointments grant.
func (uc *appointmentUsecase) ListAppointments(ctx context.Context, principal *models.Principal) ([]responses.Appointment, error) {
	principal, err := rbac.RequireAuthenticated(principal)
	if err != nil {
		return nil, err
	}

	var appointments []models.Appointment
	switch {
	case principal.Role == models.RolePatient && principal.PatientID != "":
		appointments, err = uc.AppointmentRepository.FindAppointmentsByPatient(ctx, principal.PatientID)
	case principal.Role == models.RoleDoctor && principal.PractitionerID != "":
		appointments, err = uc.AppointmentRepository.FindAppointmentsByDoctor(ctx, principal.PractitionerID)
	default:
		if err := rbac.RequirePermission(principal, models.PermissionManageAppointments); err != nil {
			return nil, err
		}
		appointments, err = uc.AppointmentRepository.FindAllAppointments(ctx)
	}
	if err != nil {
		return nil, err
	}

	results := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		results = append(results, *mapAppointmentToResponse(&appointments[i]))
	}
	return results, nil
}

// CancelAppointment marks a booking cancelled. The booking patient, the
// assigned doctor, and holders of the manage-appointments grant may cancel.
func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, principal *models.Principal, appointmentID string) error {
	principal, err := rbac.RequireAuthenticated(principal)
	if err != nil {
		return err
	}

	appointment, err := uc.AppointmentRepository.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotExist(nil)
	}

	if !uc.mayCancel(principal, appointment) {
		return exceptions.ErrForbidden(nil)
	}

	if err := uc.AppointmentRepository.UpdateAppointmentStatus(ctx, appointmentID, constvars.AppointmentStatusCancelled); err != nil {
		return err
	}

	uc.Log.Info("appointmentUsecase.CancelAppointment succeeded",
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

func (uc *appointmentUsecase) mayCancel(principal *models.Principal, appointment *models.Appointment) bool {
	switch principal.Role {
	case models.RolePatient:
		return principal.PatientID != "" && principal.PatientID == appointment.PatientID
	case models.RoleDoctor:
		return principal.PractitionerID != "" && principal.PractitionerID == appointment.DoctorID
	default:
		return rbac.HasPermission(principal.Role, models.PermissionManageAppointments)
	}
}

func mapAppointmentToResponse(appointment *models.Appointment) *responses.Appointment {
	return &responses.Appointment{
		AppointmentID: appointment.ID,
		PatientID:     appointment.PatientID,
		DoctorID:      appointment.DoctorID,
		Reason:        appointment.Reason,
		Status:        appointment.Status,
		StartTime:     appointment.StartTime,
	}
}
