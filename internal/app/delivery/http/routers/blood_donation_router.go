package routers

import (
	"careportal-service/internal/app/delivery/http/middlewares"
	"careportal-service/internal/app/models"
	"careportal-service/internal/app/services/core/blooddonation"

	"github.com/go-chi/chi/v5"
)

func attachBloodDonationRoutes(router chi.Router, middlewares *middlewares.Middlewares, donationController *blooddonation.BloodDonationController) {
	donationGate := middlewares.RequirePermission(models.PermissionManageBloodDonation)

	router.With(middlewares.Authenticate, donationGate).Post("/", donationController.CreateRequest)
	router.With(middlewares.Authenticate).Get("/", donationController.ListOpenRequests)
	router.With(middlewares.Authenticate, donationGate).Put("/{request_id}/fulfil", donationController.FulfilRequest)
}
