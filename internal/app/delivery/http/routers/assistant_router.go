package routers

import (
	"careportal-service/internal/app/delivery/http/middlewares"
	"careportal-service/internal/app/models"
	"careportal-service/internal/app/services/core/assistant"

	"github.com/go-chi/chi/v5"
)

func attachAssistantRoutes(router chi.Router, middlewares *middlewares.Middlewares, assistantController *assistant.AssistantController) {
	router.With(middlewares.Authenticate, middlewares.RequirePermission(models.PermissionUseAssistant)).Post("/chat", assistantController.Chat)
}
