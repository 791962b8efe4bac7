package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sutra-service/internal/app/config"
	"sutra-service/internal/app/delivery/http/middlewares"
	"sutra-service/internal/app/delivery/http/routers"
	"sutra-service/internal/app/drivers/database"
	"sutra-service/internal/app/drivers/logger"
	"sutra-service/internal/app/drivers/messaging"
	"sutra-service/internal/app/drivers/storage"
	"sutra-service/internal/app/services/assembly"
	"sutra-service/internal/app/services/documents"
	"sutra-service/internal/app/services/practitioners"
	"sutra-service/internal/app/services/roster"
	"sutra-service/internal/app/services/sessions"
	sharedmessaging "sutra-service/internal/app/services/shared/messaging"
	sharedredis "sutra-service/internal/app/services/shared/redis"
	sharedstorage "sutra-service/internal/app/services/shared/storage"
	"sutra-service/internal/pkg/assembler"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		MongoDB:        mongoClient.Database(driverConfig.MongoDB.DbName),
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQConnection,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	if err := bootstrapTheApp(bootstrap); err != nil {
		bootLog.Fatalf("Failed to bootstrap application: %v", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		bootLog.Infof("Server listening on port %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		bootLog.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		bootLog.Fatalf("Error closing application resources: %v", err)
	}

	bootLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) error {
	// Shared infrastructure
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	objectStorage := sharedstorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
	eventPublisher, err := sharedmessaging.NewDocumentPublisher(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.App.RabbitMQDocumentQueue,
	)
	if err != nil {
		return err
	}

	// Middlewares
	httpMiddlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		InternalConfig: bootstrap.InternalConfig,
	}

	// Sessions
	sessionTTL := time.Duration(bootstrap.InternalConfig.App.SessionExpiredTimeInHours) * time.Hour
	sessionRepository := sessions.NewSessionRedisRepository(redisRepository, sessionTTL)
	sessionUsecase := sessions.NewSessionUsecase(sessionRepository, objectStorage, bootstrap.Logger)
	sessionController := sessions.NewSessionController(
		bootstrap.Logger,
		sessionUsecase,
		bootstrap.InternalConfig.App.AttachmentMaxUploadSizeInMB,
	)

	// Roster
	rosterFhirClient := roster.NewRosterFhirClient(
		bootstrap.InternalConfig.Roster.BaseUrl,
		bootstrap.InternalConfig.Roster.TimeoutInSeconds,
		bootstrap.Logger,
	)
	rosterUsecase := roster.NewRosterUsecase(rosterFhirClient, bootstrap.Logger)
	rosterController := roster.NewRosterController(bootstrap.Logger, rosterUsecase)

	// Practitioners
	practitionerRegistry := practitioners.NewStaticPractitionerRegistry(defaultPractitioners())
	practitionerController := practitioners.NewPractitionerController(bootstrap.Logger, practitionerRegistry)

	// Documents
	documentArchive := documents.NewDocumentMongoRepository(bootstrap.MongoDB)
	documentUsecase := documents.NewDocumentUsecase(documentArchive, bootstrap.Logger)
	documentController := documents.NewDocumentController(bootstrap.Logger, documentUsecase)

	// Assembly
	buildLockTTL := time.Duration(bootstrap.InternalConfig.App.BuildLockExpiredTimeInSecs) * time.Second
	assemblyUsecase := assembly.NewAssemblyUsecase(
		sessionRepository,
		practitionerRegistry,
		redisRepository,
		objectStorage,
		documentArchive,
		eventPublisher,
		assembler.New(bootstrap.Logger),
		buildLockTTL,
		bootstrap.Logger,
	)
	assemblyController := assembly.NewAssemblyController(bootstrap.Logger, assemblyUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		httpMiddlewares,
		sessionController,
		rosterController,
		practitionerController,
		assemblyController,
		documentController,
	)

	return nil
}

func defaultPractitioners() []assembler.Author {
	return []assembler.Author{
		{
			ID:                 "prac-001",
			Name:               "Dr. A. Verma",
			Qualification:      "MBBS, MD",
			Phone:              "+91-11-40004000",
			Email:              "a.verma@example.org",
			RegistrationSystem: "https://example.org/medical-council",
			RegistrationValue:  "MC-48211",
		},
		{
			ID:            "prac-002",
			Name:          "Dr. S. Rao",
			Qualification: "MBBS, DCH",
			Email:         "s.rao@example.org",
		},
	}
}
