package routers

import (
	"fmt"
	"time"

	"careportal-service/internal/app/config"
	"careportal-service/internal/app/delivery/http/middlewares"
	"careportal-service/internal/app/services/core/appointments"
	"careportal-service/internal/app/services/core/assistant"
	"careportal-service/internal/app/services/core/auth"
	"careportal-service/internal/app/services/core/blooddonation"
	"careportal-service/internal/app/services/core/medications"
	"careportal-service/internal/app/services/core/patients"
	"careportal-service/internal/app/services/core/records"
	"careportal-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	userController *users.UserController,
	patientController *patients.PatientController,
	recordController *records.RecordController,
	appointmentController *appointments.AppointmentController,
	medicationController *medications.MedicationController,
	donationController *blooddonation.BloodDonationController,
	assistantController *assistant.AssistantController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, userController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, patientController, recordController, medicationController)
			})

			r.Route("/records", func(r chi.Router) {
				attachRecordRoutes(r, middlewares, recordController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, appointmentController)
			})

			r.Route("/medications", func(r chi.Router) {
				attachMedicationRoutes(r, middlewares, medicationController)
			})

			r.Route("/blood-donations", func(r chi.Router) {
				attachBloodDonationRoutes(r, middlewares, donationController)
			})

			r.Route("/assistant", func(r chi.Router) {
				attachAssistantRoutes(r, middlewares, assistantController)
			})
		})
	})
}
