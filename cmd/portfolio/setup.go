package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pawarnirmal/portfolio/internal/content"
	"github.com/pawarnirmal/portfolio/internal/database"
)

// openDatabase connects and brings the schema up to date.
func openDatabase(ctx context.Context, url string, log *zap.Logger) (*database.DB, error) {
	db, err := database.Open(ctx, url, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(ctx, db, log); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

// loadContent reads path, or returns the built-in content when path is empty.
func loadContent(path string, log *zap.Logger) (*content.Portfolio, error) {
	if path == "" {
		log.Info("using built-in content")
		return content.Default(), nil
	}

	p, err := content.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	log.Info("content loaded", zap.String("path", path))
	return p, nil
}
