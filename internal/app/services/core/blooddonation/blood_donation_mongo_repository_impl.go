package blooddonation

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

type BloodDonationMongoRepository struct {
	Collection *mongo.Collection
}

func NewBloodDonationMongoRepository(db *mongo.Client, dbName string) contracts.BloodDonationRepository {
	return &BloodDonationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDonationReqs),
	}
}

func (r *BloodDonationMongoRepository) CreateRequest(ctx context.Context, request *models.BloodDonationRequest) (requestID string, err error) {
	doc := bson.M{
		"bloodType":   request.BloodType,
		"urgency":     request.Urgency,
		"hospital":    request.Hospital,
		"notes":       request.Notes,
		"createdById": request.CreatedByID,
		"fulfilled":   false,
		"createdAt":   request.CreatedAt,
		"updatedAt":   request.UpdatedAt,
	}
	result, err := r.Collection.InsertOne(ctx, doc)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *BloodDonationMongoRepository) FindRequestByID(ctx context.Context, requestID string) (*models.BloodDonationRequest, error) {
	objectID, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var doc donationRequestDocument
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return doc.toModel(), nil
}

func (r *BloodDonationMongoRepository) FindOpenRequests(ctx context.Context) ([]models.BloodDonationRequest, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.Collection.Find(ctx, bson.M{"fulfilled": false}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var donationRequests []models.BloodDonationRequest
	for cursor.Next(ctx) {
		var doc donationRequestDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		donationRequests = append(donationRequests, *doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	return donationRequests, nil
}

func (r *BloodDonationMongoRepository) MarkFulfilled(ctx context.Context, requestID string) error {
	objectID, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"fulfilled":   true,
		"fulfilledAt": now,
		"updatedAt":   now,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

type donationRequestDocument struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	BloodType   string              `bson:"bloodType"`
	Urgency     string              `bson:"urgency"`
	Hospital    string              `bson:"hospital"`
	Notes       string              `bson:"notes,omitempty"`
	CreatedByID string              `bson:"createdById"`
	Fulfilled   bool                `bson:"fulfilled"`
	FulfilledAt *primitive.DateTime `bson:"fulfilledAt,omitempty"`
	models.TimeModel `bson:",inline"`
}

func (d *donationRequestDocument) toModel() *models.BloodDonationRequest {
	donationRequest := &models.BloodDonationRequest{
		ID:          d.ID.Hex(),
		BloodType:   d.BloodType,
		Urgency:     d.Urgency,
		Hospital:    d.Hospital,
		Notes:       d.Notes,
		CreatedByID: d.CreatedByID,
		Fulfilled:   d.Fulfilled,
		TimeModel:   d.TimeModel,
	}
	if d.FulfilledAt != nil {
		fulfilledAt := d.FulfilledAt.Time()
		donationRequest.FulfilledAt = &fulfilledAt
	}
	return donationRequest
}
