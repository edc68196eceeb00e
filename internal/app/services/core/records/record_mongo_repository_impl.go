package records

import (
	"context"

	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RecordMongoRepository struct {
	Collection *mongo.Collection
}

func NewRecordMongoRepository(db *mongo.Client, dbName string) contracts.MedicalRecordRepository {
	return &RecordMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMedicalRecords),
	}
}

func (r *RecordMongoRepository) CreateRecord(ctx context.Context, record *models.MedicalRecord) (recordID string, err error) {
	doc := bson.M{
		"patientId":  record.PatientID,
		"doctorId":   record.DoctorID,
		"title":      record.Title,
		"summary":    record.Summary,
		"details":    record.Details,
		"isApproved": record.IsApproved,
		"recordDate": record.RecordDate,
		"createdAt":  record.CreatedAt,
		"updatedAt":  record.UpdatedAt,
	}
	result, err := r.Collection.InsertOne(ctx, doc)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *RecordMongoRepository) FindRecordByID(ctx context.Context, recordID string) (*models.MedicalRecord, error) {
	objectID, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var doc recordDocument
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return doc.toModel(), nil
}

func (r *RecordMongoRepository) FindRecordsByPatient(ctx context.Context, patientID string) ([]models.MedicalRecord, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "recordDate", Value: -1}})

	cursor, err := r.Collection.Find(ctx, bson.M{"patientId": patientID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var records []models.MedicalRecord
	for cursor.Next(ctx) {
		var doc recordDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		records = append(records, *doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	return records, nil
}

func (r *RecordMongoRepository) UpdateRecord(ctx context.Context, record *models.MedicalRecord) error {
	objectID, err := primitive.ObjectIDFromHex(record.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{
		"$set": bson.M{
			"title":      record.Title,
			"summary":    record.Summary,
			"details":    record.Details,
			"isApproved": record.IsApproved,
			"updatedAt":  record.UpdatedAt,
		},
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *RecordMongoRepository) AddAttachment(ctx context.Context, recordID, objectName string) error {
	objectID, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$push": bson.M{"attachments": objectName}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

type recordDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	PatientID   string             `bson:"patientId"`
	DoctorID    string             `bson:"doctorId"`
	Title       string             `bson:"title"`
	Summary     string             `bson:"summary"`
	Details     string             `bson:"details,omitempty"`
	Attachments []string           `bson:"attachments,omitempty"`
	IsApproved  bool               `bson:"isApproved"`
	RecordDate  primitive.DateTime `bson:"recordDate"`
	models.TimeModel `bson:",inline"`
}

func (d *recordDocument) toModel() *models.MedicalRecord {
	return &models.MedicalRecord{
		ID:          d.ID.Hex(),
		PatientID:   d.PatientID,
		DoctorID:    d.DoctorID,
		Title:       d.Title,
		Summary:     d.Summary,
		Details:     d.Details,
		Attachments: d.Attachments,
		IsApproved:  d.IsApproved,
		RecordDate:  d.RecordDate.Time(),
		TimeModel:   d.TimeModel,
	}
}
