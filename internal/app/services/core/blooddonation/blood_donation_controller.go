package blooddonation

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

type BloodDonationController struct {
	Log             *zap.Logger
	DonationUsecase contracts.BloodDonationUsecase
}

func NewBloodDonationController(logger *zap.Logger, donationUsecase contracts.BloodDonationUsecase) *BloodDonationController {
	return &BloodDonationController{
		Log:             logger,
		DonationUsecase: donationUsecase,
	}
}

func (ctrl *BloodDonationController) CreateRequest(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateDonationRequest)
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

	result, err := ctrl.DonationUsecase.CreateRequest(ctx, principal, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateDonationRequestSuccess, result)
}

func (ctrl *BloodDonationController) ListOpenRequests(w http.ResponseWriter, r *http.Request) {
	principal, _ := r.Context().Value(constvars.CONTEXT_PRINCIPAL_KEY).(*models.Principal)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DonationUsecase.ListOpenRequests(ctx, principal)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListDonationRequestsSuccess, result)
}

func (ctrl *BloodDonationController) FulfilRequest(w http.ResponseWriter, r *http.Request) {
	principal, _ := r.Context().Value(constvars.CONTEXT_PRINCIPAL_KEY).(*models.Principal)
	requestID := chi.URLParam(r, "request_id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.DonationUsecase.FulfilRequest(ctx, principal, requestID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FulfilDonationRequestSuccess, nil)
}
