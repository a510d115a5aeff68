package main

import (
	"database/sql"
	"log"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"shelterBack/internal/config"
	"shelterBack/internal/handlers"
	"shelterBack/internal/repositories"
	"shelterBack/internal/services"
	"shelterBack/utils"
)

type application struct {
	errorLog             *log.Logger
	infoLog              *log.Logger
	cfg                  config.Config
	db                   *sql.DB
	wsManager            *WebSocketManager
	userRepo             *repositories.UserRepository
	userHandler          *handlers.UserHandler
	accommodationHandler *handlers.AccommodationHandler
	favoriteHandler      *handlers.FavoriteHandler
	reviewHandler        *handlers.ReviewHandler
	replyHandler         *handlers.ReplyHandler
}

func initializeApp(db *sql.DB, rdb *redis.Client, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	accommodationRepo := repositories.AccommodationRepository{DB: db}
	favoriteRepo := repositories.FavoriteRepository{DB: db}
	reviewRepo := repositories.ReviewRepository{DB: db}
	replyRepo := repositories.ReplyRepository{DB: db}

	// Services
	tokenManager, err := utils.NewManager(cfg.Auth.JWTSecret)
	if err != nil {
		errorLog.Fatal(err)
	}
	userService := &services.UserService{UserRepo: &userRepo, TokenManager: tokenManager, Redis: rdb}
	favoriteService := &services.FavoriteService{FavoriteRepo: &favoriteRepo, Redis: rdb}
	accommodationService := &services.AccommodationService{
		AccommodationRepo: &accommodationRepo,
		FavoriteService:   favoriteService,
		PageSize:          cfg.Listing.PageSize,
	}
	reviewService := &services.ReviewService{ReviewRepo: &reviewRepo, AccommodationRepo: &accommodationRepo}
	replyService := &services.ReplyService{ReplyRepo: &replyRepo, ReviewRepo: &reviewRepo}

	// Handlers
	wsManager := NewWebSocketManager()
	userHandler := &handlers.UserHandler{Service: userService}
	accommodationHandler := &handlers.AccommodationHandler{Service: accommodationService, Events: wsManager}
	favoriteHandler := &handlers.FavoriteHandler{Service: favoriteService}
	reviewHandler := &handlers.ReviewHandler{Service: reviewService}
	replyHandler := &handlers.ReplyHandler{Service: replyService}

	return &application{
		errorLog:             errorLog,
		infoLog:              infoLog,
		cfg:                  cfg,
		db:                   db,
		wsManager:            wsManager,
		userRepo:             &userRepo,
		userHandler:          userHandler,
		accommodationHandler: accommodationHandler,
		favoriteHandler:      favoriteHandler,
		reviewHandler:        reviewHandler,
		replyHandler:         replyHandler,
	}
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Embedder-Policy", "require-corp")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
