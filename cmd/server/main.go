package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ivms/internal/api"
	"ivms/internal/auth"
	"ivms/internal/config"
	"ivms/internal/repository"
	"ivms/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	workday, err := cfg.Workday()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid working day configuration")
	}

	database, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer database.Close()
	if err := database.Ping(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := runMigrations(database); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	bookingRepo := repository.NewBookingRepository(database)
	visitorRepo := repository.NewVisitorRepository(database)
	courierRepo := repository.NewCourierRepository(database)
	userRepo := repository.NewUserRepository(database)
	jobRepo := repository.NewJobRepository(database)

	sender := service.NewSenderService(service.NewNotifier(cfg))
	bookingSvc := service.NewBookingService(bookingRepo, sender, workday)
	visitorSvc := service.NewVisitorService(visitorRepo, sender)
	courierSvc := service.NewCourierService(courierRepo)
	userSvc := service.NewUserService(userRepo, cfg.JWTSecret)
	jobSvc := service.NewJobService(jobRepo)

	bookingHandler := api.NewBookingHandler(bookingSvc)
	visitorHandler := api.NewVisitorHandler(visitorSvc)
	courierHandler := api.NewCourierHandler(courierSvc)
	userHandler := api.NewUserHandler(userSvc)

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.ExpireSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := jobSvc.ExpireStalePendingBookings(ctx); err != nil {
			log.Error().Err(err).Msg("stale booking sweep failed")
		}
	}); err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.ExpireSchedule).Msg("failed to schedule stale booking sweep")
	}
	scheduler.Start()
	defer scheduler.Stop()

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/hallbooking/submit", bookingHandler.SubmitBooking).Methods("POST")
	r.HandleFunc("/api/hallbooking/all", bookingHandler.ListBookings).Methods("GET")
	r.HandleFunc("/api/hallbooking/slots", bookingHandler.AvailableSlots).Methods("GET")
	r.HandleFunc("/api/hallbooking/calendar", bookingHandler.Calendar).Methods("GET")
	r.HandleFunc("/api/visitors/submit", visitorHandler.RegisterVisitor).Methods("POST")
	r.HandleFunc("/api/visitors/all", visitorHandler.ListVisitors).Methods("GET")
	r.HandleFunc("/api/visitors/search", visitorHandler.SearchVisitors).Methods("GET")
	r.HandleFunc("/api/couriers/submit", courierHandler.RegisterCourier).Methods("POST")
	r.HandleFunc("/api/couriers/all", courierHandler.ListCouriers).Methods("GET")
	r.HandleFunc("/api/login", userHandler.Login).Methods("POST")
	r.HandleFunc("/api/register", userHandler.Register).Methods("POST")

	// Protected endpoints
	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(auth.Middleware(cfg.JWTSecret))
	protected.HandleFunc("/hallbooking/{id}/status", bookingHandler.UpdateStatus).Methods("PUT")
	protected.HandleFunc("/users", userHandler.ListUsers).Methods("GET")
	protected.HandleFunc("/users", userHandler.DeleteUsers).Methods("DELETE")

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("server listening")
	if err := http.ListenAndServe(addr, handlers.RecoveryHandler()(cors(r))); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func runMigrations(database *sql.DB) error {
	driver, err := postgres.WithInstance(database, &postgres.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
