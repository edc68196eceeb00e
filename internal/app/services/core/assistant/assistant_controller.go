package assistant

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

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AssistantController struct {
	Log              *zap.Logger
	AssistantUsecase contracts.AssistantUsecase
}

func NewAssistantController(logger *zap.Logger, assistantUsecase contracts.AssistantUsecase) *AssistantController {
	return &AssistantController{
		Log:              logger,
		AssistantUsecase: assistantUsecase,
	}
}

func (ctrl *AssistantController) Chat(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AssistantChat)
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
	sessionID, _ := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	result, err := ctrl.AssistantUsecase.Chat(ctx, principal, sessionID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AssistantChatSuccessMessage, result)
}
