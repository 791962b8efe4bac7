package config

import (
	"sutra-service/internal/pkg/utils"

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
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "sutra"),
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
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "sutra-documents"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                         utils.GetEnvString("APP_ENV", "development"),
			Port:                        utils.GetEnvString("APP_PORT", "8080"),
			Version:                     utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                     utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                    utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			EndpointPrefix:              utils.GetEnvString("APP_ENDPOINT_PREFIX", "/v1"),
			RabbitMQDocumentQueue:       utils.GetEnvString("APP_RABBITMQ_DOCUMENT_QUEUE", "document_assembled_queue"),
			MaxRequests:                 utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout:             utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:   utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
			RequestBodyLimitInMegabyte:  utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			SessionExpiredTimeInHours:   utils.GetEnvInt("APP_SESSION_EXPIRED_TIME_IN_HOURS", 72),
			BuildLockExpiredTimeInSecs:  utils.GetEnvInt("APP_BUILD_LOCK_EXPIRED_TIME_IN_SECONDS", 60),
			AttachmentMaxUploadSizeInMB: int64(utils.GetEnvInt("APP_ATTACHMENT_MAX_UPLOAD_SIZE_IN_MB", 5)),
			AssembleRatePerSecond:       utils.GetEnvInt("APP_ASSEMBLE_RATE_PER_SECOND", 2),
			AssembleRateBurst:           utils.GetEnvInt("APP_ASSEMBLE_RATE_BURST", 5),
		},
		Roster: Roster{
			BaseUrl:          utils.GetEnvString("ROSTER_BASE_URL", "http://localhost:5555/fhir"),
			TimeoutInSeconds: utils.GetEnvInt("ROSTER_TIMEOUT_IN_SECONDS", 10),
		},
	}
}
