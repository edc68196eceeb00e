package contracts

import (
	"context"

	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
)

type MedicalRecordRepository interface {
	CreateRecord(ctx context.Context, record *models.MedicalRecord) (recordID string, err error)
	FindRecordByID(ctx context.Context, recordID string) (*models.MedicalRecord, error)
	// FindRecordsByPatient returns the patient's records ordered by record date,
	// most recent first.
	FindRecordsByPatient(ctx context.Context, patientID string) ([]models.MedicalRecord, error)
	UpdateRecord(ctx context.Context, record *models.MedicalRecord) error
	AddAttachment(ctx context.Context, recordID, objectName string) error
}

type RecordUsecase interface {
	ListVisibleRecords(ctx context.Context, principal *models.Principal, patientID string) ([]responses.MedicalRecord, error)
	CreateRecord(ctx context.Context, principal *models.Principal, request *requests.CreateMedicalRecord) (*responses.MedicalRecord, error)
	UpdateRecord(ctx context.Context, principal *models.Principal, recordID string, request *requests.UpdateMedicalRecord) (*responses.MedicalRecord, error)
	UploadAttachment(ctx context.Context, principal *models.Principal, recordID string, request *requests.UploadAttachment) (*responses.Attachment, error)
}
