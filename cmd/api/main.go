package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"ticketboom/internal/adapter/api"
	"ticketboom/internal/adapter/api/handler"
	apimiddleware "ticketboom/internal/adapter/api/middleware"
	"ticketboom/internal/adapter/api/router"
	"ticketboom/internal/adapter/repository"
	"ticketboom/internal/infrastructure/firebase"
	"ticketboom/internal/infrastructure/mailer"
	"ticketboom/internal/infrastructure/websocket"
	"ticketboom/internal/usecase"
	"ticketboom/pkg/config"
)

// noopMessenger satisfies the premium use case's outbound port for the API
// process. The web leg only opens requests; receipts and decisions flow
// through the bot process, which carries the real Telegram messenger.
type noopMessenger struct{}

func (noopMessenger) SendText(chatID int64, text string) error { return nil }
func (noopMessenger) SendReceipt(chatID int64, photoFileID, caption, approveToken, rejectToken string) error {
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	opt := credentialsOption()

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	ticketRepo := repository.NewFirestoreTicketRepository(firestoreClient)
	commentRepo := repository.NewFirestoreCommentRepository(firestoreClient)
	notificationRepo := repository.NewFirestoreNotificationRepository(firestoreClient)

	firebaseAuthClient := firebase.NewAuthClient(authClient, cfg.VerifyRedirectURL)
	smtpMailer := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)

	ticketUseCase := usecase.NewTicketUseCase(ticketRepo)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, ticketRepo)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)
	premiumUseCase := usecase.NewPremiumUseCase(ticketRepo, noopMessenger{}, cfg.ApproverChatIDs, cfg.BotUsername)
	emailUseCase := usecase.NewEmailUseCase(firebaseAuthClient, smtpMailer)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	handler.Setup(ticketUseCase, commentUseCase, notificationUseCase, premiumUseCase, emailUseCase)

	wsHandler := handler.NewWebSocketHandler(wsManager, notificationUseCase, commentUseCase)
	if err := wsHandler.StartNotificationFeed(ctx); err != nil {
		log.Fatalf("Failed to start notification feed: %v", err)
	}

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(cfg.AdminEmails)

	router.Setup(e, authMiddleware, adminMiddleware, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

func credentialsOption() option.ClientOption {
	// Service account from the environment in production, from a file in
	// local development.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		return option.WithCredentialsJSON([]byte(serviceAccountJSON))
	}

	serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
	if serviceAccountPath == "" {
		serviceAccountPath = "./service-account.json"
	}
	if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
		log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
	}

	log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
	return option.WithCredentialsFile(serviceAccountPath)
}
