package main

import (
	"database/sql"
	"log"

	"firebase.google.com/go/messaging"
	"github.com/redis/go-redis/v9"

	"menageBack/internal/config"
	"menageBack/internal/handlers"
	"menageBack/internal/repositories"
	"menageBack/internal/services"
	"menageBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	db       *sql.DB

	signingKey string

	userRepo *repositories.UserRepository

	userHandler        *handlers.UserHandler
	listingHandler     *handlers.ListingHandler
	applicationHandler *handlers.ApplicationHandler
	bookingHandler     *handlers.BookingHandler
	reviewHandler      *handlers.ReviewHandler
	favoriteHandler    *handlers.FavoriteHandler
	invoiceHandler     *handlers.InvoiceHandler
	paymentHandler     *handlers.PaymentHandler
	fcmHandler         *handlers.FCMHandler

	wsManager *WebSocketManager
}

func initializeApp(cfg config.Config, db *sql.DB, rdb *redis.Client, fcmClient *messaging.Client, errorLog, infoLog *log.Logger) *application {
	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	listingRepo := repositories.ListingRepository{DB: db}
	applicationRepo := repositories.ApplicationRepository{DB: db}
	bookingRepo := repositories.BookingRepository{DB: db}
	reviewRepo := repositories.ReviewRepository{DB: db}
	favoriteRepo := repositories.FavoriteRepository{DB: db}
	invoiceRepo := repositories.InvoiceRepository{DB: db}
	paymentRepo := repositories.PaymentRepository{DB: db}
	resetCodeRepo := repositories.ResetCodeRepository{RDB: rdb}
	viewsRepo := repositories.ViewCounterRepository{RDB: rdb}

	tokenManager, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		errorLog.Fatal(err)
	}

	// The notifier fans out to FCM and the websocket hub.
	fcmHandler := handlers.NewFCMHandler(fcmClient, db)
	wsManager := NewWebSocketManager()
	notifier := &pushNotifier{fcm: fcmHandler, ws: wsManager}

	// Services
	userService := &services.UserService{
		UserRepo:      &userRepo,
		ResetCodeRepo: &resetCodeRepo,
		TokenManager:  tokenManager,
		SigningKey:    cfg.Auth.SigningKey,
	}
	listingService := &services.ListingService{ListingRepo: &listingRepo, ViewsRepo: &viewsRepo}
	applicationService := &services.ApplicationService{
		ApplicationRepo: &applicationRepo,
		ListingRepo:     &listingRepo,
		Notifier:        notifier,
	}
	bookingService := &services.BookingService{
		BookingRepo:     &bookingRepo,
		ApplicationRepo: &applicationRepo,
		ListingRepo:     &listingRepo,
		InvoiceRepo:     &invoiceRepo,
		Notifier:        notifier,
	}
	reviewService := &services.ReviewService{
		ReviewRepo:  &reviewRepo,
		BookingRepo: &bookingRepo,
		UserRepo:    &userRepo,
		Notifier:    notifier,
	}
	favoriteService := &services.FavoriteService{FavoriteRepo: &favoriteRepo, ListingRepo: &listingRepo}
	invoiceService := &services.InvoiceService{InvoiceRepo: &invoiceRepo}
	paymentService := &services.PaymentService{
		PaymentRepo: &paymentRepo,
		InvoiceRepo: &invoiceRepo,
		Notifier:    notifier,
	}

	return &application{
		errorLog:           errorLog,
		infoLog:            infoLog,
		db:                 db,
		signingKey:         cfg.Auth.SigningKey,
		userRepo:           &userRepo,
		userHandler:        &handlers.UserHandler{Service: userService},
		listingHandler:     &handlers.ListingHandler{Service: listingService},
		applicationHandler: &handlers.ApplicationHandler{Service: applicationService},
		bookingHandler:     &handlers.BookingHandler{Service: bookingService},
		reviewHandler:      &handlers.ReviewHandler{Service: reviewService},
		favoriteHandler:    &handlers.FavoriteHandler{Service: favoriteService},
		invoiceHandler:     &handlers.InvoiceHandler{Service: invoiceService},
		paymentHandler:     &handlers.PaymentHandler{Service: paymentService},
		fcmHandler:         fcmHandler,
		wsManager:          wsManager,
	}
}
