package appointments

import (
	"context"
	"net/http"
	"time"

	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) BookAppointment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.BookAppointment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	principal, _ := r.Context().Value(constvars.CONTEXT_PRINCIPAL_KEY).(*models.Principal)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.BookAppointment(ctx, principal, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccess, result)
}

func (ctrl *AppointmentController) ListAppointments(w http.ResponseWriter, r *http.Request) {
	principal, _ := r.Context().Value(constvars.CONTEXT_PRINCIPAL_KEY).(*models.Principal)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.ListAppointments(ctx, principal)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListAppointmentsSuccess, result)
}

func (ctrl *AppointmentController) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	principal, _ := r.Context().Value(constvars.CONTEXT_PRINCIPAL_KEY).(*models.Principal)
	appointmentID := chi.URLParam(r, "appointment_id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.AppointmentUsecase.CancelAppointment(ctx, principal, appointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelAppointmentSuccess, nil)
}
