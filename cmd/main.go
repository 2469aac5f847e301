package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/leleneme/lattice/internal/api/lattice_api"
	"github.com/leleneme/lattice/internal/api/middlewares"
	"github.com/leleneme/lattice/internal/config"
	"github.com/leleneme/lattice/internal/database"
	"github.com/leleneme/lattice/internal/repository/lattice_repository"
	"github.com/leleneme/lattice/internal/services/lattice_services"
)

func setupCORS(cfg config.CORSConfig, router http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: strings.Split(cfg.AllowedOrigins, ","),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(router)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logrus.WithError(err).Fatal("invalid log level")
	}
	logrus.SetLevel(level)

	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	defer db.Close()
	logrus.Info("database connection successful")

	if err := database.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("database migration failed")
	}

	userRepo := lattice_repository.NewUserRepo(db)
	teamRepo := lattice_repository.NewTeamRepo(db)
	membershipRepo := lattice_repository.NewMembershipRepo(db)
	boardRepo := lattice_repository.NewBoardRepo(db)
	sectionRepo := lattice_repository.NewSectionRepo(db)
	cardRepo := lattice_repository.NewCardRepo(db)

	userSvc := lattice_services.NewUserService(userRepo, membershipRepo, cardRepo)
	teamSvc := lattice_services.NewTeamService(teamRepo, membershipRepo, boardRepo, sectionRepo, userRepo, userSvc)
	boardSvc := lattice_services.NewBoardService(boardRepo, sectionRepo, userRepo, teamSvc)
	sectionSvc := lattice_services.NewSectionService(sectionRepo, cardRepo, boardSvc)
	cardSvc := lattice_services.NewCardService(cardRepo, sectionSvc, userSvc)

	r := mux.NewRouter()
	lattice_api.NewUserHandler(userSvc).UserRoutes(r)
	lattice_api.NewTeamHandler(teamSvc).TeamRoutes(r)
	lattice_api.NewTeamMemberHandler(teamSvc).TeamMemberRoutes(r)
	lattice_api.NewBoardHandler(boardSvc).BoardRoutes(r)
	lattice_api.NewSectionHandler(sectionSvc).SectionRoutes(r)
	lattice_api.NewCardHandler(cardSvc).CardRoutes(r)

	handler := setupCORS(cfg.CORS, middlewares.LoggingMiddleware(r))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.WithField("addr", server.Addr).Info("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("HTTP server failed")
		}
	}()

	<-ctx.Done()
	logrus.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
}
