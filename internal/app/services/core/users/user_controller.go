package users

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type UserController struct {
	Log         *zap.Logger
	UserUsecase contracts.UserUsecase
}

func NewUserController(logger *zap.Logger, userUsecase contracts.UserUsecase) *UserController {
	return &UserController{
		Log:         logger,
		UserUsecase: userUsecase,
	}
}

func (ctrl *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	principal, _ := r.Context().Value(constvars.CONTEXT_PRINCIPAL_KEY).(*models.Principal)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.UserUsecase.GetProfile(ctx, principal)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, result)
}

func (ctrl *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateProfile)
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

	result, err := ctrl.UserUsecase.UpdateProfile(ctx, principal, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateProfileSuccessMessage, result)
}

func (ctrl *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	principal, _ := r.Context().Value(constvars.CONTEXT_PRINCIPAL_KEY).(*models.Principal)

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(r.URL.Query().Get("page_size"))
	if err != nil || pageSize < 1 {
		pageSize = 20
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, total, err := ctrl.UserUsecase.ListUsers(ctx, principal, page, pageSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListUsersSuccessMessage, pagination, result)
}
