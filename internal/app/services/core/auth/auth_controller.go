package auth

import (
	"context"
	"net/http"
	"time"

	"careportal-service/internal/app/contracts"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
	}
}

func (ctrl *AuthController) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RegisterPatient)
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

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AuthUsecase.RegisterPatient(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterSuccessMessage, result)
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Login)
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

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, result)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	if sessionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUnauthenticated(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.AuthUsecase.Logout(ctx, sessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}
