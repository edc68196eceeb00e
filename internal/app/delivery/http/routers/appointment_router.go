package routers

import (
	"careportal-service/internal/app/delivery/http/middlewares"
	"careportal-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.With(middlewares.Authenticate).Post("/", appointmentController.BookAppointment)
	router.With(middlewares.Authenticate).Get("/", appointmentController.ListAppointments)
	router.With(middlewares.Authenticate).Delete("/{appointment_id}", appointmentController.CancelAppointment)
}
