package patients

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

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
	}
}

func (ctrl *PatientController) VerifyPin(w http.ResponseWriter, r *http.Request) {
	request := new(requests.VerifyPin)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.PatientID = chi.URLParam(r, "patient_id")

	// No ValidateStruct here: a shape error on the PIN must produce the same
	// rejection as a wrong PIN, and the usecase owns that collapsed path.
	principal, _ := r.Context().Value(constvars.CONTEXT_PRINCIPAL_KEY).(*models.Principal)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PatientUsecase.VerifyPin(ctx, principal, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result.Message, result)
}

func (ctrl *PatientController) UpdatePin(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdatePin)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.PatientID = chi.URLParam(r, "patient_id")

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	principal, _ := r.Context().Value(constvars.CONTEXT_PRINCIPAL_KEY).(*models.Principal)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.PatientUsecase.UpdatePin(ctx, principal, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePinSuccessMessage, nil)
}
