package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"hirelink/internal/adapter/api"
	"hirelink/internal/adapter/api/handler"
	apimiddleware "hirelink/internal/adapter/api/middleware"
	"hirelink/internal/adapter/api/router"
	"hirelink/internal/adapter/repository"
	"hirelink/internal/infrastructure/cloudinary"
	"hirelink/internal/infrastructure/firebase"
	"hirelink/internal/infrastructure/ratelimit"
	"hirelink/internal/infrastructure/realtime"
	"hirelink/internal/infrastructure/search"
	"hirelink/internal/usecase"
	"hirelink/internal/worker"
	"hirelink/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	searchClient, err := search.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to create Elasticsearch client: %v", err)
	}
	if err := searchClient.EnsureIndex(ctx); err != nil {
		log.Fatalf("Failed to ensure search index: %v", err)
	}

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	serviceRepo := repository.NewFirestoreServiceRepository(firestoreClient)
	jobPostRepo := repository.NewFirestoreJobPostRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	conversationRepo := repository.NewFirestoreConversationRepository(firestoreClient)
	groupChatRepo := repository.NewFirestoreGroupChatRepository(firestoreClient)
	outboxRepo := repository.NewFirestoreSyncOutboxRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	wsManager := realtime.NewManager()
	wsManager.Start(ctx)

	redisClient := realtime.NewRedisClient(cfg)
	defer redisClient.Close()

	bridge := realtime.NewBridge(redisClient, wsManager)
	bridge.Start(ctx)

	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	syncUseCase := usecase.NewSyncUseCase(serviceRepo, outboxRepo, searchClient)
	userUseCase := usecase.NewUserUseCase(userRepo, firebaseAuthClient, syncUseCase)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo, userRepo, outboxRepo, searchClient)
	jobPostUseCase := usecase.NewJobPostUseCase(jobPostRepo, userRepo)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, userRepo)
	chatUseCase := usecase.NewChatUseCase(conversationRepo, userRepo, bridge, rateLimiter)
	groupChatUseCase := usecase.NewGroupChatUseCase(groupChatRepo, userRepo, bridge, rateLimiter)

	handler.Setup(userUseCase, serviceUseCase, jobPostUseCase, reviewUseCase, chatUseCase, groupChatUseCase, syncUseCase)
	handler.SetupUploadHandler(cloudinary.NewSigner(cfg.CloudinaryApiSecret))
	handler.SetupAdminHandler(userUseCase, serviceUseCase, jobPostUseCase)
	handler.SetupDevTokenHandler(userUseCase)
	handler.SetupHealthHandler()

	syncWorker := worker.NewSyncWorker(outboxRepo, serviceRepo, searchClient, cfg.SyncMaxAttempts)
	if err := syncWorker.Start(cfg.SyncRetrySchedule); err != nil {
		log.Fatalf("Failed to start sync worker: %v", err)
	}
	defer syncWorker.Stop()

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	wsHandler := handler.NewWebSocketHandler(wsManager, authMiddleware)

	router.Setup(e, authMiddleware, adminMiddleware)
	router.SetupDevRouter(e, cfg.Environment)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
