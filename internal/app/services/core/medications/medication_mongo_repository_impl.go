package medications

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MedicationMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicationMongoRepository(db *mongo.Client, dbName string) contracts.MedicationRepository {
	return &MedicationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMedications),
	}
}

func (r *MedicationMongoRepository) CreateMedication(ctx context.Context, medication *models.Medication) (medicationID string, err error) {
	doc := bson.M{
		"patientId":    medication.PatientID,
		"prescriberId": medication.PrescriberID,
		"name":         medication.Name,
		"dosage":       medication.Dosage,
		"frequency":    medication.Frequency,
		"startDate":    medication.StartDate,
		"endDate":      medication.EndDate,
		"active":       medication.Active,
		"createdAt":    medication.CreatedAt,
		"updatedAt":    medication.UpdatedAt,
	}
	result, err := r.Collection.InsertOne(ctx, doc)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *MedicationMongoRepository) UpdateMedication(ctx context.Context, medication *models.Medication) error {
	objectID, err := primitive.ObjectIDFromHex(medication.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"name":      medication.Name,
		"dosage":    medication.Dosage,
		"frequency": medication.Frequency,
		"startDate": medication.StartDate,
		"endDate":   medication.EndDate,
		"active":    medication.Active,
		"updatedAt": time.Now().UTC(),
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *MedicationMongoRepository) FindMedicationByID(ctx context.Context, medicationID string) (*models.Medication, error) {
	objectID, err := primitive.ObjectIDFromHex(medicationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var doc medicationDocument
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return doc.toModel(), nil
}

func (r *MedicationMongoRepository) FindMedicationsByPatient(ctx context.Context, patientID string) ([]models.Medication, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "startDate", Value: -1}})

	cursor, err := r.Collection.Find(ctx, bson.M{"patientId": patientID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var medications []models.Medication
	for cursor.Next(ctx) {
		var doc medicationDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		medications = append(medications, *doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	return medications, nil
}

type medicationDocument struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty"`
	PatientID    string              `bson:"patientId"`
	PrescriberID string              `bson:"prescriberId"`
	Name         string              `bson:"name"`
	Dosage       string              `bson:"dosage"`
	Frequency    string              `bson:"frequency"`
	StartDate    primitive.DateTime  `bson:"startDate"`
	EndDate      *primitive.DateTime `bson:"endDate,omitempty"`
	Active       bool                `bson:"active"`
	models.TimeModel `bson:",inline"`
}

func (d *medicationDocument) toModel() *models.Medication {
	medication := &models.Medication{
		ID:           d.ID.Hex(),
		PatientID:    d.PatientID,
		PrescriberID: d.PrescriberID,
		Name:         d.Name,
		Dosage:       d.Dosage,
		Frequency:    d.Frequency,
		StartDate:    d.StartDate.Time(),
		Active:       d.Active,
		TimeModel:    d.TimeModel,
	}
	if d.EndDate != nil {
		endDate := d.EndDate.Time()
		medication.EndDate = &endDate
	}
	return medication
}
