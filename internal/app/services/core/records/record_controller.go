package records

import (
	"context"
	"errors"
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

type RecordController struct {
	Log            *zap.Logger
	RecordUsecase  contracts.RecordUsecase
	MaxUploadBytes int64
}

func NewRecordController(logger *zap.Logger, recordUsecase contracts.RecordUsecase, maxUploadSizeMB int64) *RecordController {
	return &RecordController{
		Log:            logger,
		RecordUsecase:  recordUsecase,
		MaxUploadBytes: maxUploadSizeMB << 20,
	}
}

func (ctrl *RecordController) ListVisibleRecords(w http.ResponseWriter, r *http.Request) {
	principal, _ := r.Context().Value(constvars.CONTEXT_PRINCIPAL_KEY).(*models.Principal)
	patientID := chi.URLParam(r, "patient_id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.RecordUsecase.ListVisibleRecords(ctx, principal, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListRecordsSuccessMessage, result)
}

func (ctrl *RecordController) CreateRecord(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateMedicalRecord)
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

	result, err := ctrl.RecordUsecase.CreateRecord(ctx, principal, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateRecordSuccessMessage, result)
}

func (ctrl *RecordController) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateMedicalRecord)
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
	recordID := chi.URLParam(r, "record_id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.RecordUsecase.UpdateRecord(ctx, principal, recordID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateRecordSuccessMessage, result)
}

func (ctrl *RecordController) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, ctrl.MaxUploadBytes)

	request := new(requests.UploadAttachment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUploadTooLarge(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	principal, _ := r.Context().Value(constvars.CONTEXT_PRINCIPAL_KEY).(*models.Principal)
	recordID := chi.URLParam(r, "record_id")

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.RecordUsecase.UploadAttachment(ctx, principal, recordID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadAttachmentSuccess, result)
}
