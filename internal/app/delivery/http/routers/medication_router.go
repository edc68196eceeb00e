package routers

import (
	"careportal-service/internal/app/delivery/http/middlewares"
	"careportal-service/internal/app/models"
	"careportal-service/internal/app/services/core/medications"

	"github.com/go-chi/chi/v5"
)

func attachMedicationRoutes(router chi.Router, middlewares *middlewares.Middlewares, medicationController *medications.MedicationController) {
	router.With(middlewares.Authenticate, middlewares.RequirePermission(models.PermissionManageMedications)).Post("/", medicationController.SaveMedication)
}
