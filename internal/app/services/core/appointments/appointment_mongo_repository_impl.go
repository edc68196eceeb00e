package appointments

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

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (appointmentID string, err error) {
	doc := bson.M{
		"patientId": appointment.PatientID,
		"doctorId":  appointment.DoctorID,
		"reason":    appointment.Reason,
		"status":    appointment.Status,
		"startTime": appointment.StartTime,
		"createdAt": appointment.CreatedAt,
		"updatedAt": appointment.UpdatedAt,
	}
	result, err := r.Collection.InsertOne(ctx, doc)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AppointmentMongoRepository) FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var doc appointmentDocument
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return doc.toModel(), nil
}

func (r *AppointmentMongoRepository) FindAppointmentsByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.findAppointments(ctx, bson.M{"patientId": patientID})
}

func (r *AppointmentMongoRepository) FindAppointmentsByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return r.findAppointments(ctx, bson.M{"doctorId": doctorID})
}

func (r *AppointmentMongoRepository) FindAllAppointments(ctx context.Context) ([]models.Appointment, error) {
	return r.findAppointments(ctx, bson.M{})
}

func (r *AppointmentMongoRepository) findAppointments(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	for cursor.Next(ctx) {
		var doc appointmentDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		appointments = append(appointments, *doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	return appointments, nil
}

func (r *AppointmentMongoRepository) UpdateAppointmentStatus(ctx context.Context, appointmentID, status string) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{"status": status}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

type appointmentDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PatientID string             `bson:"patientId"`
	DoctorID  string             `bson:"doctorId"`
	Reason    string             `bson:"reason"`
	Status    string             `bson:"status"`
	StartTime primitive.DateTime `bson:"startTime"`
	models.TimeModel `bson:",inline"`
}

func (d *appointmentDocument) toModel() *models.Appointment {
	return &models.Appointment{
		ID:        d.ID.Hex(),
		PatientID: d.PatientID,
		DoctorID:  d.DoctorID,
		Reason:    d.Reason,
		Status:    d.Status,
		StartTime: d.StartTime.Time(),
		TimeModel: d.TimeModel,
	}
}
