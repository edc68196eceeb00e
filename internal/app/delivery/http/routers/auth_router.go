package routers

import (
	"careportal-service/internal/app/delivery/http/middlewares"
	"careportal-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/register", authController.RegisterPatient)
	router.Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}
