package responses

type AssistantChat struct {
	Reply string `json:"reply"`
}
