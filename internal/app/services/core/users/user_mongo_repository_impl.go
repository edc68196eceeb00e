package users

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

type UserMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Client, dbName string) contracts.UserRepository {
	return &UserMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUsers),
	}
}

func (r *UserMongoRepository) CreateUser(ctx context.Context, userModel *models.User) (userID string, err error) {
	doc := bson.M{
		"role":        userModel.Role,
		"email":       userModel.Email,
		"username":    userModel.Username,
		"password":    userModel.Password,
		"displayName": userModel.DisplayName,
		"createdAt":   userModel.CreatedAt,
		"updatedAt":   userModel.UpdatedAt,
	}
	result, err := r.Collection.InsertOne(ctx, doc)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *UserMongoRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var doc userDocument
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return doc.toModel(), nil
}

func (r *UserMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var doc userDocument
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return doc.toModel(), nil
}

func (r *UserMongoRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var doc userDocument
	err := r.Collection.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return doc.toModel(), nil
}

func (r *UserMongoRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	objectID, err := primitive.ObjectIDFromHex(userModel.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{
		"$set": bson.M{
			"role":           userModel.Role,
			"email":          userModel.Email,
			"username":       userModel.Username,
			"displayName":    userModel.DisplayName,
			"patientId":      userModel.PatientID,
			"practitionerId": userModel.PractitionerID,
			"updatedAt":      userModel.UpdatedAt,
		},
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *UserMongoRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.User, int, error) {
	total, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	for cursor.Next(ctx) {
		var doc userDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
		}
		users = append(users, *doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}

	return users, int(total), nil
}

type userDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Role           models.Role        `bson:"role"`
	Email          string             `bson:"email"`
	Username       string             `bson:"username"`
	Password       string             `bson:"password"`
	DisplayName    string             `bson:"displayName"`
	PatientID      string             `bson:"patientId,omitempty"`
	PractitionerID string             `bson:"practitionerId,omitempty"`
	models.TimeModel `bson:",inline"`
}

func (d *userDocument) toModel() *models.User {
	return &models.User{
		ID:             d.ID.Hex(),
		Role:           d.Role,
		Email:          d.Email,
		Username:       d.Username,
		Password:       d.Password,
		DisplayName:    d.DisplayName,
		PatientID:      d.PatientID,
		PractitionerID: d.PractitionerID,
		TimeModel:      d.TimeModel,
	}
}
