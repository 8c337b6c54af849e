package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pawarnirmal/portfolio/internal/content"
	"github.com/pawarnirmal/portfolio/internal/handler"
	"github.com/pawarnirmal/portfolio/internal/middleware"
	"github.com/pawarnirmal/portfolio/internal/render"
	"github.com/pawarnirmal/portfolio/internal/repository"
	"github.com/pawarnirmal/portfolio/internal/search"
	"github.com/pawarnirmal/portfolio/internal/service"
)

const (
	shutdownTimeout = 10 * time.Second
	cleanupInterval = 24 * time.Hour
)

func runServe(c *cli.Context) error {
	log := zap.L()
	cfg := loadConfig(c)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer db.Close()

	portfolio, err := loadContent(cfg.ContentFile, log)
	if err != nil {
		return err
	}
	store := content.NewStore(portfolio)

	index, err := search.New(portfolio, log)
	if err != nil {
		return fmt.Errorf("build search index: %w", err)
	}
	defer index.Close()
	index.Attach(store)

	cache := render.NewCache(store, render.Options{ContactForm: true, Logger: log})

	visitors := repository.NewVisitorRepository(db)
	links := repository.NewLinkRepository(db)
	messages := repository.NewMessageRepository(db)

	mailer := service.NewSMTPMailer(cfg.SMTP)
	if !mailer.Enabled() {
		log.Warn("SMTP credentials not configured; contact messages will queue until they are")
	}
	worker := service.NewDeliveryWorker(messages, mailer, log, service.DeliveryOptions{
		Interval:    cfg.DeliveryInterval,
		MaxAttempts: cfg.MaxDeliveryAttempts,
		Retries:     2,
	})

	tracker, err := service.NewTracker(visitors, cfg.VisitorSalt, log)
	if err != nil {
		return err
	}
	defer tracker.Wait()

	auth, err := service.NewAdminAuth(cfg.Admin)
	if err != nil {
		return err
	}
	if cfg.UsingDevCredentials() {
		log.Warn("using default admin credentials; set ADMIN_USERNAME and ADMIN_PASSWORD")
	}

	h := handler.New(handler.Deps{
		DB:               db,
		Store:            store,
		Cache:            cache,
		Search:           index,
		Contact:          service.NewContactService(messages, worker.Wake, log),
		Links:            service.NewLinkService(store, links, log),
		Stats:            service.NewStatsService(visitors, links, messages, cache, store),
		Tracker:          tracker,
		Auth:             auth,
		Limiter:          middleware.NewRateLimiter(cfg.ContactPerMinute, cfg.ContactBurst),
		Worker:           worker,
		Logger:           log,
		Visitors:         visitors,
		Messages:         messages,
		LinkRepo:         links,
		VisitorRetention: cfg.VisitorRetention,
		SecureCookies:    cfg.SecureCookies,
	})

	var watcher *content.Watcher
	if cfg.ContentFile != "" {
		if watcher, err = content.NewWatcher(cfg.ContentFile, store, log); err != nil {
			return err
		}
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h.Engine(),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", zap.String("server_addr", "http://localhost:"+cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return worker.Run(gctx)
	})

	if watcher != nil {
		g.Go(func() error {
			return watcher.Run(gctx)
		})
	}

	g.Go(func() error {
		return cleanupLoop(gctx, tracker, cfg.VisitorRetention, log)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}

// cleanupLoop applies visitor retention at startup and then once a day.
func cleanupLoop(ctx context.Context, tracker *service.Tracker, retention time.Duration, log *zap.Logger) error {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		if _, err := tracker.Cleanup(ctx, retention); err != nil && ctx.Err() == nil {
			log.Error("visitor cleanup failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
