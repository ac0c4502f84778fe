package main

import (
	"context"
	"fmt"
	"log"
	"time"

	_ "github.com/uptc-deportes/reservas-api/api/swagger"
	"github.com/uptc-deportes/reservas-api/internal/handler"
	"github.com/uptc-deportes/reservas-api/internal/identity"
	"github.com/uptc-deportes/reservas-api/internal/repository"
	"github.com/uptc-deportes/reservas-api/internal/router"
	"github.com/uptc-deportes/reservas-api/internal/service"
	"github.com/uptc-deportes/reservas-api/pkg/cache"
	"github.com/uptc-deportes/reservas-api/pkg/config"
	"github.com/uptc-deportes/reservas-api/pkg/database"
	"github.com/uptc-deportes/reservas-api/pkg/logger"
	"github.com/uptc-deportes/reservas-api/pkg/storage"
)

// @title Reservas Deportivas UPTC API
// @version 1.0.0
// @description Reservation API for university sports venues
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("database connection failed", "error", err)
	}
	defer db.Close() //nolint:errcheck

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		redisClient = nil
		if cfg.Availability.CacheEnabled {
			logr.Sugar().Warnw("availability cache enabled but redis unavailable", "error", err)
		}
	}

	store, err := storage.NewLocalStorage(cfg.Proofs.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("proof storage init failed", "error", err)
	}
	signer := storage.NewSignedURLSigner(cfg.Proofs.SignedURLSecret, cfg.Proofs.SignedURLTTL)

	// Repositories.
	venueRepo := repository.NewVenueRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	blackoutRepo := repository.NewBlackoutRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	// Services.
	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Availability.CacheTTL, logr, cfg.Availability.CacheEnabled)
	auditSvc := service.NewAuditService(auditRepo, service.AuditQueueConfig{
		Workers:    cfg.Audit.Workers,
		BufferSize: cfg.Audit.BufferSize,
		MaxRetries: cfg.Audit.MaxRetries,
	}, logr)
	auditSvc.Start(context.Background())
	defer auditSvc.Stop()

	availabilitySvc := service.NewAvailabilityService(scheduleRepo, blackoutRepo, reservationRepo, cacheSvc, metricsSvc, logr)
	venueSvc := service.NewVenueService(venueRepo, availabilitySvc, auditSvc, logr)
	scheduleSvc := service.NewScheduleService(scheduleRepo, blackoutRepo, venueRepo, availabilitySvc, logr)
	reservationSvc := service.NewReservationService(reservationRepo, venueRepo, availabilitySvc, auditSvc, metricsSvc, logr)
	proofSvc := service.NewProofService(reservationRepo, store, signer, auditSvc, cfg.Proofs.MaxFileSizeBytes, logr)
	exportSvc := service.NewExportService(reservationRepo, cfg.Exports.Enabled, logr)
	profileSvc := service.NewProfileService(profileRepo, logr)

	if ttl := cfg.Proofs.RetentionTTL; ttl > 0 {
		go func() {
			ticker := time.NewTicker(12 * time.Hour)
			defer ticker.Stop()
			for range ticker.C {
				if _, err := proofSvc.CleanupExpired(ttl); err != nil {
					logr.Sugar().Warnw("comprobante retention sweep failed", "error", err)
				}
			}
		}()
	}

	audience := ""
	if len(cfg.Identity.Audience) > 0 {
		audience = cfg.Identity.Audience[0]
	}
	verifier := identity.NewVerifier(cfg.Identity.JWTSecret, cfg.Identity.Issuer, audience)

	engine := router.New(cfg, logr, router.Deps{
		Verifier:     verifier,
		Profiles:     profileSvc,
		Metrics:      metricsSvc,
		Venues:       handler.NewVenueHandler(venueSvc, scheduleSvc, availabilitySvc),
		Reservations: handler.NewReservationHandler(reservationSvc, proofSvc, exportSvc),
		ProfilesAPI:  handler.NewProfileHandler(profileSvc, metricsSvc),
		Audit:        handler.NewAuditHandler(auditSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := engine.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
