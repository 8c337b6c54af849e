package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pawarnirmal/portfolio/internal/database"
	"github.com/pawarnirmal/portfolio/internal/repository"
)

type repos struct {
	db       *database.DB
	visitors *repository.VisitorRepository
	links    *repository.LinkRepository
	messages *repository.MessageRepository
}

func setupRepos(t *testing.T) repos {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, filepath.Join(t.TempDir(), "service.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(ctx, db, zap.NewNop()))

	return repos{
		db:       db,
		visitors: repository.NewVisitorRepository(db),
		links:    repository.NewLinkRepository(db),
		messages: repository.NewMessageRepository(db),
	}
}
