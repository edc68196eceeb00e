package routers

import (
	"careportal-service/internal/app/delivery/http/middlewares"
	"careportal-service/internal/app/services/core/medications"
	"careportal-service/internal/app/services/core/patients"
	"careportal-service/internal/app/services/core/records"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	patientController *patients.PatientController,
	recordController *records.RecordController,
	medicationController *medications.MedicationController,
) {
	router.With(middlewares.Authenticate).Post("/{patient_id}/pin/verify", patientController.VerifyPin)
	router.With(middlewares.Authenticate).Put("/{patient_id}/pin", patientController.UpdatePin)
	router.With(middlewares.Authenticate).Get("/{patient_id}/records", recordController.ListVisibleRecords)
	router.With(middlewares.Authenticate).Get("/{patient_id}/medications", medicationController.ListMedications)
}
