package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	InternalConfig struct {
		App    App
		Roster Roster
	}

	App struct {
		Env                         string
		Port                        string
		Version                     string
		Address                     string
		Timezone                    string
		EndpointPrefix              string
		RabbitMQDocumentQueue       string
		MaxRequests                 int
		ShutdownTimeout             int
		MaxTimeRequestsPerSeconds   int
		RequestBodyLimitInMegabyte  int
		SessionExpiredTimeInHours   int
		BuildLockExpiredTimeInSecs  int
		AttachmentMaxUploadSizeInMB int64
		AssembleRatePerSecond       int
		AssembleRateBurst           int
	}
	Roster struct {
		BaseUrl          string
		TimeoutInSeconds int
	}
)
