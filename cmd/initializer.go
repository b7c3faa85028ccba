package main

import (
	"database/sql"
	"log"
	"net/http"

	_ "github.com/go-sql-driver/mysql"

	"gastroBack/internal/config"
	"gastroBack/internal/handlers"
	"gastroBack/internal/repositories"
	"gastroBack/internal/services"
	"gastroBack/utils"
)

type application struct {
	errorLog             *log.Logger
	infoLog              *log.Logger
	signingKey           string
	db                   *sql.DB
	userRepo             *repositories.UserRepository
	userHandler          *handlers.UserHandler
	establishmentHandler *handlers.EstablishmentHandler
	menuHandler          *handlers.MenuHandler
	dishHandler          *handlers.DishHandler
	categoryHandler      *handlers.CategoryHandler
	allergenHandler      *handlers.AllergenHandler
	featureHandler       *handlers.AccessibilityFeatureHandler
	reservationHandler   *handlers.ReservationHandler
	reviewHandler        *handlers.ReviewHandler
}

func initializeApp(db *sql.DB, errorLog, infoLog *log.Logger, cfg config.Config) *application {
	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	establishmentRepo := repositories.EstablishmentRepository{DB: db}
	menuRepo := repositories.MenuRepository{DB: db}
	dishRepo := repositories.DishRepository{DB: db}
	categoryRepo := repositories.CategoryRepository{DB: db}
	allergenRepo := repositories.AllergenRepository{DB: db}
	featureRepo := repositories.AccessibilityFeatureRepository{DB: db}
	reservationRepo := repositories.ReservationRepository{DB: db}
	reviewRepo := repositories.ReviewRepository{DB: db}

	tokenManager, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		errorLog.Fatal(err)
	}

	// Services
	userService := &services.UserService{UserRepo: &userRepo, TokenManager: tokenManager, SigningKey: cfg.Auth.SigningKey}
	establishmentService := &services.EstablishmentService{EstablishmentRepo: &establishmentRepo}
	menuService := &services.MenuService{MenuRepo: &menuRepo}
	dishService := &services.DishService{DishRepo: &dishRepo}
	categoryService := &services.CategoryService{CategoryRepo: &categoryRepo}
	allergenService := &services.AllergenService{AllergenRepo: &allergenRepo}
	featureService := &services.AccessibilityFeatureService{FeatureRepo: &featureRepo}
	reservationService := &services.ReservationService{ReservationRepo: &reservationRepo}
	reviewService := &services.ReviewService{ReviewsRepo: &reviewRepo}

	// Handlers
	userHandler := &handlers.UserHandler{Service: userService}
	establishmentHandler := &handlers.EstablishmentHandler{Service: establishmentService}
	menuHandler := &handlers.MenuHandler{Service: menuService}
	dishHandler := &handlers.DishHandler{Service: dishService}
	categoryHandler := &handlers.CategoryHandler{Service: categoryService}
	allergenHandler := &handlers.AllergenHandler{Service: allergenService}
	featureHandler := &handlers.AccessibilityFeatureHandler{Service: featureService}
	reservationHandler := &handlers.ReservationHandler{Service: reservationService}
	reviewHandler := &handlers.ReviewHandler{Service: reviewService}

	return &application{
		errorLog:             errorLog,
		infoLog:              infoLog,
		signingKey:           cfg.Auth.SigningKey,
		db:                   db,
		userRepo:             &userRepo,
		userHandler:          userHandler,
		establishmentHandler: establishmentHandler,
		menuHandler:          menuHandler,
		dishHandler:          dishHandler,
		categoryHandler:      categoryHandler,
		allergenHandler:      allergenHandler,
		featureHandler:       featureHandler,
		reservationHandler:   reservationHandler,
		reviewHandler:        reviewHandler,
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
