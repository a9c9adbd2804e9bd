package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"teknikservis/backend/internal/backup"
	"teknikservis/backend/internal/blob"
	"teknikservis/backend/internal/config"
	"teknikservis/backend/internal/httpapi"
	"teknikservis/backend/internal/persist"
	"teknikservis/backend/internal/service"
	"teknikservis/backend/internal/state"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	cfg := config.Load()
	if err := validateSecurityConfig(cfg); err != nil {
		log.Fatal("invalid security configuration", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	persister, err := newPersister(ctx, cfg)
	if err != nil {
		log.Fatal("open state backend", zap.String("backend", cfg.StateBackend), zap.Error(err))
	}
	log.Info("state backend ready", zap.String("backend", cfg.StateBackend))

	store := state.Open(ctx, persister, log)
	svc := service.New(store, log)

	auth, err := httpapi.NewAuthManager(cfg.AuthSecret, time.Duration(cfg.AccessTokenTTLMinutes)*time.Minute, cfg.ManagerPIN)
	if err != nil {
		log.Fatal("init auth", zap.Error(err))
	}
	api, err := httpapi.New(svc, auth, cfg.AllowedOrigin, log)
	if err != nil {
		log.Fatal("init http api", zap.Error(err))
	}

	var scheduler *backup.Scheduler
	if cfg.BackupCron != "" {
		targets, err := backupTargets(ctx, cfg)
		if err != nil {
			log.Fatal("init backup targets", zap.Error(err))
		}
		scheduler = backup.NewScheduler(svc, targets, cfg.BackupCron, log)
		if err := scheduler.Start(); err != nil {
			log.Fatal("start backup scheduler", zap.String("cron", cfg.BackupCron), zap.Error(err))
		}
	}

	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           api.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("listening", zap.String("addr", cfg.Address()))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn("shutdown error", zap.Error(err))
	}
	if scheduler != nil {
		scheduler.Stop()
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Warn("close state backend", zap.Error(err))
	}

	log.Info("server stopped")
}

func newPersister(ctx context.Context, cfg config.Config) (persist.Persister, error) {
	switch cfg.StateBackend {
	case "memory":
		return persist.NewMemory(), nil
	case "file":
		return persist.NewFile(cfg.StatePath)
	case "sqlite":
		return persist.NewSQLite(ctx, cfg.StatePath)
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres backend")
		}
		return persist.NewPostgres(ctx, cfg.DatabaseURL)
	case "redis":
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("REDIS_ADDR is required for the redis backend")
		}
		return persist.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case "mongo":
		if cfg.MongoURI == "" {
			return nil, fmt.Errorf("MONGO_URI is required for the mongo backend")
		}
		return persist.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	default:
		return nil, fmt.Errorf("unknown state backend %q", cfg.StateBackend)
	}
}

func backupTargets(ctx context.Context, cfg config.Config) ([]blob.Target, error) {
	fs, err := blob.NewFilesystem(cfg.BackupDir)
	if err != nil {
		return nil, fmt.Errorf("filesystem target: %w", err)
	}
	targets := []blob.Target{fs}
	if cfg.BackupS3Bucket != "" {
		s3t, err := blob.NewS3(ctx, cfg.BackupS3Bucket, cfg.BackupS3Prefix)
		if err != nil {
			return nil, fmt.Errorf("s3 target: %w", err)
		}
		targets = append(targets, s3t)
	}
	return targets, nil
}

func validateSecurityConfig(cfg config.Config) error {
	if len(cfg.AuthSecret) < 32 {
		return fmt.Errorf("AUTH_SECRET must be set and at least 32 characters")
	}
	if len(cfg.ManagerPIN) < 6 {
		return fmt.Errorf("MANAGER_PIN must be set and at least 6 digits")
	}
	if err := validatePINStrength(cfg.ManagerPIN); err != nil {
		return fmt.Errorf("MANAGER_PIN is too weak: %w", err)
	}
	return nil
}

// validatePINStrength rejects PINs that are all the same digit,
// sequential (ascending or descending), or from a known-weak list.
func validatePINStrength(pin string) error {
	known := map[string]bool{
		"123456": true, "654321": true, "000000": true, "111111": true,
		"222222": true, "333333": true, "444444": true, "555555": true,
		"666666": true, "777777": true, "888888": true, "999999": true,
		"121212": true, "112233": true, "123123": true,
	}
	if known[pin] {
		return fmt.Errorf("common PIN not allowed")
	}

	allSame := true
	for i := 1; i < len(pin); i++ {
		if pin[i] != pin[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return fmt.Errorf("all-same-digit PIN not allowed")
	}

	ascending, descending := true, true
	for i := 1; i < len(pin); i++ {
		diff := int(pin[i]) - int(pin[i-1])
		if diff != 1 {
			ascending = false
		}
		if diff != -1 {
			descending = false
		}
	}
	if ascending || descending {
		return fmt.Errorf("sequential PIN not allowed")
	}

	return nil
}
