package records

import (
	"context"
	"path/filepath"
	"sort"
	"time"

	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/app/services/core/rbac"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type recordUsecase struct {
	RecordRepository contracts.MedicalRecordRepository
	MinioStorage     contracts.Storage
	Log              *zap.Logger
}

func NewRecordUsecase(
	recordRepository contracts.MedicalRecordRepository,
	minioStorage contracts.Storage,
	logger *zap.Logger,
) contracts.RecordUsecase {
	return &recordUsecase{
		RecordRepository: recordRepository,
		MinioStorage:     minioStorage,
		Log:              logger,
	}
}

// ListVisibleRecords decides what a principal may see of a patient's chart:
// patients see their own records only, doctors see records they authored plus
// approved ones, and any other role needs the view-medical-record grant for the
// approved-only view. Results are ordered by record date, most recent first;
// that ordering is part of the contract, not a storage artifact.
//
// Callers gating sensitive detail views run the PIN gate first; this operation
// does not re-verify possession, on purpose, so role logic and the possession
// factor stay independently testable.
func (uc *recordUsecase) ListVisibleRecords(ctx context.Context, principal *models.Principal, patientID string) ([]responses.MedicalRecord, error) {
	principal, err := rbac.RequireAuthenticated(principal)
	if err != nil {
		return nil, err
	}

	switch principal.Role {
	case models.RolePatient:
		if principal.PatientID != patientID {
			return nil, exceptions.ErrNotRecordOwner(nil)
		}
	case models.RoleDoctor:
		// visibility filtered per record below
	default:
		if err := rbac.RequirePermission(principal, models.PermissionViewMedicalRecord); err != nil {
			return nil, err
		}
	}

	records, err := uc.RecordRepository.FindRecordsByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	visible := make([]responses.MedicalRecord, 0, len(records))
	for i := range records {
		record := &records[i]
		if !uc.isVisible(principal, record) {
			continue
		}
		visible = append(visible, *mapRecordToResponse(record))
	}

	// The repository already sorts, but visibility filtering must not be able
	// to disturb recency-first ordering.
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].RecordDate.After(visible[j].RecordDate)
	})

	return visible, nil
}

func (uc *recordUsecase) isVisible(principal *models.Principal, record *models.MedicalRecord) bool {
	switch principal.Role {
	case models.RolePatient:
		return record.PatientID == principal.PatientID
	case models.RoleDoctor:
		return record.DoctorID == principal.PractitionerID || record.IsApproved
	default:
		return record.IsApproved
	}
}

func (uc *recordUsecase) CreateRecord(ctx context.Context, principal *models.Principal, request *requests.CreateMedicalRecord) (*responses.MedicalRecord, error) {
	err := rbac.RequirePermission(principal, models.PermissionEditMedicalRecord)
	if err != nil {
		return nil, err
	}

	recordDate, err := time.Parse(time.RFC3339, request.RecordDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	now := time.Now()
	record := &models.MedicalRecord{
		PatientID:  request.PatientID,
		DoctorID:   principal.PractitionerID,
		Title:      request.Title,
		Summary:    request.Summary,
		Details:    request.Details,
		IsApproved: request.IsApproved,
		RecordDate: recordDate,
		TimeModel:  models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	recordID, err := uc.RecordRepository.CreateRecord(ctx, record)
	if err != nil {
		return nil, err
	}
	record.ID = recordID

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("recordUsecase.CreateRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, record.PatientID),
		zap.String("record_id", recordID),
	)

	return mapRecordToResponse(record), nil
}

func (uc *recordUsecase) UpdateRecord(ctx context.Context, principal *models.Principal, recordID string, request *requests.UpdateMedicalRecord) (*responses.MedicalRecord, error) {
	err := rbac.RequirePermission(principal, models.PermissionEditMedicalRecord)
	if err != nil {
		return nil, err
	}

	record, err := uc.RecordRepository.FindRecordByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrRecordNotExist(nil)
	}

	// A doctor may only touch their own authored records; admins have the
	// edit grant without authorship.
	if principal.Role == models.RoleDoctor && record.DoctorID != principal.PractitionerID {
		return nil, exceptions.ErrForbidden(nil)
	}

	if request.Title != "" {
		record.Title = request.Title
	}
	if request.Summary != "" {
		record.Summary = request.Summary
	}
	if request.Details != "" {
		record.Details = request.Details
	}
	if request.IsApproved != nil {
		record.IsApproved = *request.IsApproved
	}
	record.UpdatedAt = time.Now()

	err = uc.RecordRepository.UpdateRecord(ctx, record)
	if err != nil {
		return nil, err
	}

	return mapRecordToResponse(record), nil
}

func (uc *recordUsecase) UploadAttachment(ctx context.Context, principal *models.Principal, recordID string, request *requests.UploadAttachment) (*responses.Attachment, error) {
	err := rbac.RequirePermission(principal, models.PermissionEditMedicalRecord)
	if err != nil {
		return nil, err
	}

	record, err := uc.RecordRepository.FindRecordByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrRecordNotExist(nil)
	}

	if principal.Role == models.RoleDoctor && record.DoctorID != principal.PractitionerID {
		return nil, exceptions.ErrForbidden(nil)
	}

	objectName := utils.GenerateFileName("record", recordID, filepath.Ext(request.FileName))
	objectURL, err := uc.MinioStorage.UploadObject(ctx, objectName, request.Data, request.ContentType)
	if err != nil {
		return nil, err
	}

	err = uc.RecordRepository.AddAttachment(ctx, recordID, objectName)
	if err != nil {
		return nil, err
	}

	return &responses.Attachment{
		RecordID:   recordID,
		ObjectName: objectName,
		URL:        objectURL,
	}, nil
}

func mapRecordToResponse(record *models.MedicalRecord) *responses.MedicalRecord {
	return &responses.MedicalRecord{
		RecordID:    record.ID,
		PatientID:   record.PatientID,
		DoctorID:    record.DoctorID,
		Title:       record.Title,
		Summary:     record.Summary,
		Details:     record.Details,
		Attachments: record.Attachments,
		IsApproved:  record.IsApproved,
		RecordDate:  record.RecordDate,
	}
}
