package config

import (
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

type DriverConfig struct {
	MongoDB  MongoDB
	Redis    Redis
	Logger   Logger
	RabbitMQ RabbitMQ
	Minio    Minio
}

type MongoDB struct {
	Port     string
	Host     string
	DbName   string
	Username string
	Password string
}

type Redis struct {
	Host     string
	Port     string
	Password string
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

type RabbitMQ struct {
	Port     string
	Host     string
	Username string
	Password string
}

type Minio struct {
	Port       string
	Host       string
	Username   string
	Password   string
	BucketName string
	UseSSL     bool
}

type InternalConfig struct {
	App       App
	JWT       JWT
	Assistant Assistant
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Address                   string
	EndpointPrefix            string
	NotificationQueue         string
	MaxRequests               int
	ShutdownTimeout           int
	SessionTTLInHour          int
	ChatHistoryTTLInHour      int
	AttachmentMaxUploadSizeMB int64
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

type Assistant struct {
	BaseUrl           string
	APIKey            string
	Model             string
	RequestsPerSecond float64
	Burst             int
	SystemPrompt      string
}

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	RabbitMQ       *amqp.Connection
	Minio          *minio.Client
	Logger         *zap.Logger
	DriverConfig   *DriverConfig
	InternalConfig *InternalConfig
}
