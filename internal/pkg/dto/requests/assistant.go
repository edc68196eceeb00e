package requests

type AssistantChat struct {
	Message string `json:"message" validate:"required,max=4000"`
}
