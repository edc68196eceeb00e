package requests

type CreateMedicalRecord struct {
	PatientID  string `json:"patient_id" validate:"required"`
	Title      string `json:"title" validate:"required,max=200"`
	Summary    string `json:"summary" validate:"required"`
	Details    string `json:"details"`
	RecordDate string `json:"record_date" validate:"required"`
	IsApproved bool   `json:"is_approved"`
}

type UpdateMedicalRecord struct {
	Title      string `json:"title" validate:"omitempty,max=200"`
	Summary    string `json:"summary"`
	Details    string `json:"details"`
	IsApproved *bool  `json:"is_approved"`
}

type UploadAttachment struct {
	FileName    string `json:"file_name" validate:"required"`
	ContentType string `json:"content_type" validate:"required"`
	Data        []byte `json:"data" validate:"required"`
}
