package contracts

import (
	"context"

	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
)

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (appointmentID string, err error)
	FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindAppointmentsByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	FindAppointmentsByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	FindAllAppointments(ctx context.Context) ([]models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID, status string) error
}

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, principal *models.Principal, request *requests.BookAppointment) (*responses.Appointment, error)
	ListAppointments(ctx context.Context, principal *models.Principal) ([]responses.Appointment, error)
	CancelAppointment(ctx context.Context, principal *models.Principal, appointmentID string) error
}
