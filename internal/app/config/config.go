package config

import (
	"careportal-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "careportal"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "record-attachments"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			NotificationQueue:         utils.GetEnvString("APP_RABBITMQ_NOTIFICATION_QUEUE", "portal-notifications"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			SessionTTLInHour:          utils.GetEnvInt("APP_SESSION_TTL_IN_HOUR", 1),
			ChatHistoryTTLInHour:      utils.GetEnvInt("APP_CHAT_HISTORY_TTL_IN_HOUR", 2),
			AttachmentMaxUploadSizeMB: utils.GetEnvInt64("APP_ATTACHMENT_UPLOAD_MAX_SIZE_IN_MB", 6),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
		Assistant: Assistant{
			BaseUrl:           utils.GetEnvString("ASSISTANT_BASE_URL", "https://api.openai.com/v1/chat/completions"),
			APIKey:            utils.GetEnvString("ASSISTANT_API_KEY", ""),
			Model:             utils.GetEnvString("ASSISTANT_MODEL", "gpt-4o-mini"),
			RequestsPerSecond: utils.GetEnvFloat("ASSISTANT_REQUESTS_PER_SECOND", 2),
			Burst:             utils.GetEnvInt("ASSISTANT_BURST", 4),
			SystemPrompt:      utils.GetEnvString("ASSISTANT_SYSTEM_PROMPT", "You are a helpful healthcare portal assistant. You do not give medical diagnoses."),
		},
	}
}
