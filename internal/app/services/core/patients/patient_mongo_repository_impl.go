package patients

import (
	"context"
	"time"

	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

func (r *PatientMongoRepository) CreatePatient(ctx context.Context, patientModel *models.Patient) (patientID string, err error) {
	doc := bson.M{
		"userId":    patientModel.UserID,
		"fullName":  patientModel.FullName,
		"bloodType": patientModel.BloodType,
		"createdAt": patientModel.CreatedAt,
		"updatedAt": patientModel.UpdatedAt,
	}
	result, err := r.Collection.InsertOne(ctx, doc)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PatientMongoRepository) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var doc patientDocument
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return doc.toModel(), nil
}

func (r *PatientMongoRepository) FindPatientByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	var doc patientDocument
	err := r.Collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return doc.toModel(), nil
}

func (r *PatientMongoRepository) UpdatePatientPinHash(ctx context.Context, patientID, pinHash string) error {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{
		"$set": bson.M{
			"pinHash":   pinHash,
			"updatedAt": time.Now(),
		},
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

type patientDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"userId"`
	FullName  string             `bson:"fullName"`
	BloodType string             `bson:"bloodType,omitempty"`
	PinHash   string             `bson:"pinHash,omitempty"`
	models.TimeModel `bson:",inline"`
}

func (d *patientDocument) toModel() *models.Patient {
	return &models.Patient{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		FullName:  d.FullName,
		BloodType: d.BloodType,
		PinHash:   d.PinHash,
		TimeModel: d.TimeModel,
	}
}
