package responses

type VerifyPin struct {
	Verified bool   `json:"verified"`
	Message  string `json:"message"`
}
