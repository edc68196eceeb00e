package appointments

import (
	"context"
	"strconv"
	"testing"
	"time"

	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAppointmentRepository struct {
	appointments map[string]*models.Appointment
	nextID       int
}

func newFakeAppointmentRepository() *fakeAppointmentRepository {
	return &fakeAppointmentRepository{appointments: map[string]*models.Appointment{}, nextID: 1}
}

func (f *fakeAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	appointmentID := "a-" + strconv.Itoa(f.nextID)
	f.nextID++
	stored := *appointment
	stored.ID = appointmentID
	f.appointments[appointmentID] = &stored
	return appointmentID, nil
}

func (f *fakeAppointmentRepository) FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, ok := f.appointments[appointmentID]
	if !ok {
		return nil, nil
	}
	copied := *appointment
	return &copied, nil
}

func (f *fakeAppointmentRepository) FindAppointmentsByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	var result []models.Appointment
	for _, appointment := range f.appointments {
		if appointment.PatientID == patientID {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepository) FindAppointmentsByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	var result []models.Appointment
	for _, appointment := range f.appointments {
		if appointment.DoctorID == doctorID {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepository) FindAllAppointments(ctx context.Context) ([]models.Appointment, error) {
	var result []models.Appointment
	for _, appointment := range f.appointments {
		result = append(result, *appointment)
	}
	return result, nil
}

func (f *fakeAppointmentRepository) UpdateAppointmentStatus(ctx context.Context, appointmentID, status string) error {
	appointment, ok := f.appointments[appointmentID]
	if !ok {
		return exceptions.ErrAppointmentNotExist(nil)
	}
	appointment.Status = status
	return nil
}

func newTestAppointmentUsecase(repo *fakeAppointmentRepository) contracts.AppointmentUsecase {
	return NewAppointmentUsecase(repo, zap.NewNop())
}

func patientPrincipal(patientID string) *models.Principal {
	return &models.Principal{UserID: "u-" + patientID, Role: models.RolePatient, PatientID: patientID}
}

func TestBookAppointment(t *testing.T) {
	t.Run("Patient Books For Themselves", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		usecase := newTestAppointmentUsecase(repo)

		result, err := usecase.BookAppointment(context.Background(), patientPrincipal("p-1"), &requests.BookAppointment{
			DoctorID:  "d-5",
			Reason:    "Follow-up",
			StartTime: time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339),
		})
		require.NoError(t, err)
		assert.Equal(t, "p-1", result.PatientID)
		assert.Equal(t, constvars.AppointmentStatusBooked, result.Status)
	})

	t.Run("Doctor Cannot Book As Patient", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		usecase := newTestAppointmentUsecase(repo)

		principal := &models.Principal{UserID: "u-doc", Role: models.RoleDoctor, PractitionerID: "d-5"}
		_, err := usecase.BookAppointment(context.Background(), principal, &requests.BookAppointment{
			DoctorID:  "d-5",
			Reason:    "n/a",
			StartTime: time.Now().UTC().Format(time.RFC3339),
		})
		assert.True(t, exceptions.IsStatus(err, constvars.StatusForbidden))
	})

	t.Run("Bad Start Time Is Rejected", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		usecase := newTestAppointmentUsecase(repo)

		_, err := usecase.BookAppointment(context.Background(), patientPrincipal("p-1"), &requests.BookAppointment{
			DoctorID:  "d-5",
			Reason:    "Follow-up",
			StartTime: "next tuesday",
		})
		assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))
	})
}

func TestListAppointments(t *testing.T) {
	seed := func(repo *fakeAppointmentRepository) {
		repo.appointments["a-1"] = &models.Appointment{ID: "a-1", PatientID: "p-1", DoctorID: "d-5", Status: constvars.AppointmentStatusBooked}
		repo.appointments["a-2"] = &models.Appointment{ID: "a-2", PatientID: "p-2", DoctorID: "d-5", Status: constvars.AppointmentStatusBooked}
		repo.appointments["a-3"] = &models.Appointment{ID: "a-3", PatientID: "p-2", DoctorID: "d-9", Status: constvars.AppointmentStatusBooked}
	}

	t.Run("Patient Sees Own Bookings Only", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		seed(repo)
		usecase := newTestAppointmentUsecase(repo)

		result, err := usecase.ListAppointments(context.Background(), patientPrincipal("p-1"))
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "a-1", result[0].AppointmentID)
	})

	t.Run("Doctor Sees Own Schedule", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		seed(repo)
		usecase := newTestAppointmentUsecase(repo)

		principal := &models.Principal{UserID: "u-doc", Role: models.RoleDoctor, PractitionerID: "d-5"}
		result, err := usecase.ListAppointments(context.Background(), principal)
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("Secretary Sees Everything", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		seed(repo)
		usecase := newTestAppointmentUsecase(repo)

		principal := &models.Principal{UserID: "u-sec", Role: models.RoleSecretary}
		result, err := usecase.ListAppointments(context.Background(), principal)
		require.NoError(t, err)
		assert.Len(t, result, 3)
	})
}

func TestCancelAppointment(t *testing.T) {
	seed := func(repo *fakeAppointmentRepository) {
		repo.appointments["a-1"] = &models.Appointment{ID: "a-1", PatientID: "p-1", DoctorID: "d-5", Status: constvars.AppointmentStatusBooked}
	}

	t.Run("Booking Patient May Cancel", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		seed(repo)
		usecase := newTestAppointmentUsecase(repo)

		err := usecase.CancelAppointment(context.Background(), patientPrincipal("p-1"), "a-1")
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCancelled, repo.appointments["a-1"].Status)
	})

	t.Run("Another Patient May Not Cancel", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		seed(repo)
		usecase := newTestAppointmentUsecase(repo)

		err := usecase.CancelAppointment(context.Background(), patientPrincipal("p-2"), "a-1")
		assert.True(t, exceptions.IsStatus(err, constvars.StatusForbidden))
		assert.Equal(t, constvars.AppointmentStatusBooked, repo.appointments["a-1"].Status)
	})

	t.Run("Assigned Doctor May Cancel", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		seed(repo)
		usecase := newTestAppointmentUsecase(repo)

		principal := &models.Principal{UserID: "u-doc", Role: models.RoleDoctor, PractitionerID: "d-5"}
		err := usecase.CancelAppointment(context.Background(), principal, "a-1")
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCancelled, repo.appointments["a-1"].Status)
	})

	t.Run("Missing Appointment Yields 404", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		usecase := newTestAppointmentUsecase(repo)

		err := usecase.CancelAppointment(context.Background(), patientPrincipal("p-1"), "a-missing")
		assert.True(t, exceptions.IsStatus(err, constvars.StatusNotFound))
	})
}
