package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careportal-service/internal/app/config"
	"careportal-service/internal/app/delivery/http/middlewares"
	"careportal-service/internal/app/delivery/http/routers"
	"careportal-service/internal/app/drivers/database"
	"careportal-service/internal/app/drivers/logger"
	"careportal-service/internal/app/drivers/messaging"
	"careportal-service/internal/app/drivers/storage"
	"careportal-service/internal/app/services/core/appointments"
	"careportal-service/internal/app/services/core/assistant"
	"careportal-service/internal/app/services/core/auth"
	"careportal-service/internal/app/services/core/blooddonation"
	"careportal-service/internal/app/services/core/medications"
	"careportal-service/internal/app/services/core/patients"
	"careportal-service/internal/app/services/core/records"
	"careportal-service/internal/app/services/core/session"
	"careportal-service/internal/app/services/core/users"
	sharedmessaging "careportal-service/internal/app/services/shared/messaging"
	sharedredis "careportal-service/internal/app/services/shared/redis"
	sharedstorage "careportal-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig, log)
	redisClient := database.NewRedisClient(driverConfig, log)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, log)
	minioClient := storage.NewMinio(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests to finish..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared infrastructure
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig)
	messagePublisher := sharedmessaging.NewRabbitMQPublisher(bootstrap.RabbitMQ)

	// Session
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// User
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	userUsecase := users.NewUserUsecase(userMongoRepository, bootstrap.Logger)
	userController := users.NewUserController(bootstrap.Logger, userUsecase)

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, bootstrap.Logger)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, patientMongoRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Medical records
	recordMongoRepository := records.NewRecordMongoRepository(bootstrap.MongoDB, dbName)
	recordUsecase := records.NewRecordUsecase(recordMongoRepository, minioStorage, bootstrap.Logger)
	recordController := records.NewRecordController(bootstrap.Logger, recordUsecase, bootstrap.InternalConfig.App.AttachmentMaxUploadSizeMB)

	// Appointments
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentMongoRepository, bootstrap.Logger)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Medications
	medicationMongoRepository := medications.NewMedicationMongoRepository(bootstrap.MongoDB, dbName)
	medicationUsecase := medications.NewMedicationUsecase(medicationMongoRepository, bootstrap.Logger)
	medicationController := medications.NewMedicationController(bootstrap.Logger, medicationUsecase)

	// Blood donation
	donationMongoRepository := blooddonation.NewBloodDonationMongoRepository(bootstrap.MongoDB, dbName)
	donationUsecase := blooddonation.NewBloodDonationUsecase(
		donationMongoRepository,
		messagePublisher,
		bootstrap.InternalConfig.App.NotificationQueue,
		bootstrap.Logger,
	)
	donationController := blooddonation.NewBloodDonationController(bootstrap.Logger, donationUsecase)

	// Assistant
	assistantClient := assistant.NewAssistantClient(&bootstrap.InternalConfig.Assistant)
	assistantUsecase := assistant.NewAssistantUsecase(assistantClient, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	assistantController := assistant.NewAssistantController(bootstrap.Logger, assistantUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		userController,
		patientController,
		recordController,
		appointmentController,
		medicationController,
		donationController,
		assistantController,
	)
}
