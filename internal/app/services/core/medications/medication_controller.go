package medications

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

type MedicationController struct {
	Log               *zap.Logger
	MedicationUsecase contracts.MedicationUsecase
}

func NewMedicationController(logger *zap.Logger, medicationUsecase contracts.MedicationUsecase) *MedicationController {
	return &MedicationController{
		Log:               logger,
		MedicationUsecase: medicationUsecase,
	}
}

func (ctrl *MedicationController) ListMedications(w http.ResponseWriter, r *http.Request) {
	principal, _ := r.Context().Value(constvars.CONTEXT_PRINCIPAL_KEY).(*models.Principal)
	patientID := chi.URLParam(r, "patient_id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MedicationUsecase.ListMedications(ctx, principal, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListMedicationsSuccess, result)
}

func (ctrl *MedicationController) SaveMedication(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SaveMedication)
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

	result, err := ctrl.MedicationUsecase.SaveMedication(ctx, principal, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpsertMedicationSuccess, result)
}
