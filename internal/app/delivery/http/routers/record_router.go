package routers

import (
	"careportal-service/internal/app/delivery/http/middlewares"
	"careportal-service/internal/app/models"
	"careportal-service/internal/app/services/core/records"

	"github.com/go-chi/chi/v5"
)

func attachRecordRoutes(router chi.Router, middlewares *middlewares.Middlewares, recordController *records.RecordController) {
	editGate := middlewares.RequirePermission(models.PermissionEditMedicalRecord)

	router.With(middlewares.Authenticate, editGate).Post("/", recordController.CreateRecord)
	router.With(middlewares.Authenticate, editGate).Put("/{record_id}", recordController.UpdateRecord)
	router.With(middlewares.Authenticate, editGate).Post("/{record_id}/attachments", recordController.UploadAttachment)
}
