package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ericfisherdev/foliopanel/internal/adapter/driven/localfs"
	sqliteadapter "github.com/ericfisherdev/foliopanel/internal/adapter/driven/sqlite"
	httphandler "github.com/ericfisherdev/foliopanel/internal/adapter/driving/http"
	webhandler "github.com/ericfisherdev/foliopanel/internal/adapter/driving/web"
	"github.com/ericfisherdev/foliopanel/internal/application"
	"github.com/ericfisherdev/foliopanel/internal/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration.
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"db_path", cfg.DBPath,
		"upload_dir", cfg.UploadDir,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open database (dual reader/writer with WAL mode).
	db, err := sqliteadapter.NewDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()
	slog.Info("database opened", "path", cfg.DBPath)

	// 4. Run migrations on writer connection.
	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		return err
	}
	slog.Info("migrations complete")

	// 5. Wire driven adapters.
	experienceStore := sqliteadapter.NewExperienceRepo(db)
	educationStore := sqliteadapter.NewEducationRepo(db)
	projectStore := sqliteadapter.NewProjectRepo(db)
	adminStore := sqliteadapter.NewAdminRepo(db)

	fileStore, err := localfs.New(cfg.UploadDir)
	if err != nil {
		return err
	}
	slog.Info("upload directory ready", "dir", cfg.UploadDir)

	// 6. Create auth service and provision the admin credential on first run.
	authSvc := application.NewAuthService(adminStore, cfg.JWTSecret, cfg.SessionTTL, slog.Default())
	if err := authSvc.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		return err
	}

	// 7. Register API and browser routes.
	apiHandler := httphandler.NewHandler(experienceStore, educationStore, projectStore, fileStore, authSvc, slog.Default())
	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, apiHandler)
	webhandler.RegisterRoutes(mux, cfg.UploadDir)

	handler := httphandler.ApplyMiddleware(mux, slog.Default())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
		}
	}()

	slog.Info("foliopanel started", "listen_addr", cfg.ListenAddr)

	// 8. Wait for shutdown signal.
	<-ctx.Done()
	slog.Info("shutting down")

	// 9. Graceful shutdown with 10s timeout to drain in-flight requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}
