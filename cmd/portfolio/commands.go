package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/pawarnirmal/portfolio/internal/content"
	"github.com/pawarnirmal/portfolio/internal/database"
	"github.com/pawarnirmal/portfolio/internal/domain"
	"github.com/pawarnirmal/portfolio/internal/render"
	"github.com/pawarnirmal/portfolio/internal/repository"
	"github.com/pawarnirmal/portfolio/internal/service"
	"github.com/pawarnirmal/portfolio/internal/static"
)

func runMigrate(c *cli.Context) error {
	log := zap.L()
	cfg := loadConfig(c)

	db, err := database.Open(c.Context, cfg.DatabaseURL, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	return database.Migrate(c.Context, db, log)
}

func runExport(c *cli.Context) error {
	log := zap.L()
	cfg := loadConfig(c)

	p, err := loadContent(cfg.ContentFile, log)
	if err != nil {
		return err
	}

	out := c.String("out")
	if err := exportSite(out, p, time.Now()); err != nil {
		return err
	}
	log.Info("static site exported", zap.String("out", out))
	return nil
}

// exportSite writes index.html with direct links, portfolio.json and the
// embedded assets under out/static.
func exportSite(out string, p *content.Portfolio, now time.Time) error {
	page, err := render.Build(p, 1, now.Year(), render.Options{
		DirectLinks: true,
		Now:         func() time.Time { return now },
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	if err := os.WriteFile(filepath.Join(out, "index.html"), page.Body, 0o644); err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode content: %w", err)
	}
	if err := os.WriteFile(filepath.Join(out, "portfolio.json"), data, 0o644); err != nil {
		return fmt.Errorf("write portfolio.json: %w", err)
	}

	return copyFS(static.FS, filepath.Join(out, "static"))
}

func copyFS(src fs.FS, dst string) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(src, path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}

func runDeliver(c *cli.Context) error {
	log := zap.L()
	cfg := loadConfig(c)

	db, err := openDatabase(c.Context, cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer db.Close()

	worker := service.NewDeliveryWorker(
		repository.NewMessageRepository(db),
		service.NewSMTPMailer(cfg.SMTP),
		log,
		service.DeliveryOptions{
			Interval:    cfg.DeliveryInterval,
			MaxAttempts: cfg.MaxDeliveryAttempts,
			Retries:     2,
		},
	)

	report, err := worker.Flush(c.Context)
	if errors.Is(err, domain.ErrMailerDisabled) {
		return fmt.Errorf("cannot deliver: %w", err)
	}
	if err != nil {
		return err
	}

	log.Info("delivery finished",
		zap.Int("sent", report.Sent),
		zap.Int("retried", report.Retried),
		zap.Int("failed", report.Failed),
		zap.Int("skipped", report.Skipped))
	return nil
}

func runCleanup(c *cli.Context) error {
	log := zap.L()
	cfg := loadConfig(c)

	db, err := openDatabase(c.Context, cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer db.Close()

	tracker, err := service.NewTracker(repository.NewVisitorRepository(db), cfg.VisitorSalt, log)
	if err != nil {
		return err
	}

	deleted, err := tracker.Cleanup(c.Context, cfg.VisitorRetention)
	if err != nil {
		return err
	}
	log.Info("cleanup finished", zap.Int64("deleted", deleted))
	return nil
}
