package database

import (
	"context"
	"path/filepath"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		in      string
		dialect Dialect
		driver  string
		dsn     string
	}{
		{"postgres://u:p@localhost/db", DialectPostgres, "pgx", "postgres://u:p@localhost/db"},
		{"postgresql://localhost/db", DialectPostgres, "pgx", "postgresql://localhost/db"},
		{"file:portfolio.db", DialectSQLite, "sqlite", "file:portfolio.db?" + sqlitePragmas},
		{"sqlite://data/site.db", DialectSQLite, "sqlite", "file:data/site.db?" + sqlitePragmas},
		{"site.db?mode=rwc", DialectSQLite, "sqlite", "file:site.db?mode=rwc&" + sqlitePragmas},
		{"file:x.db?_pragma=busy_timeout(1)", DialectSQLite, "sqlite", "file:x.db?_pragma=busy_timeout(1)"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			dialect, driver, dsn := parseURL(tt.in)
			assert.Equal(t, tt.dialect, dialect)
			assert.Equal(t, tt.driver, driver)
			assert.Equal(t, tt.dsn, dsn)
		})
	}
}

func TestOpenAndMigrate_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, DialectSQLite, db.Dialect())
	require.NoError(t, Migrate(ctx, db, zap.NewNop()))
	// Second run is a no-op.
	require.NoError(t, Migrate(ctx, db, zap.NewNop()))

	for _, table := range []string{"visitors", "links", "messages"} {
		query, args, err := db.Builder().Select("COUNT(*)").From(table).ToSql()
		require.NoError(t, err)
		var n int
		require.NoError(t, db.SQL().QueryRowContext(ctx, query, args...).Scan(&n), table)
		assert.Zero(t, n)
	}

	query, _, err := db.Builder().Select("id").From("messages").Where(sq.Eq{"id": "x"}).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "id = ?")
}

func TestBuilderFor(t *testing.T) {
	tests := []struct {
		dialect Dialect
		want    string
	}{
		{DialectSQLite, "UPDATE messages SET status = ? WHERE id = ?"},
		{DialectPostgres, "UPDATE messages SET status = $1 WHERE id = $2"},
	}
	for _, tt := range tests {
		t.Run(string(tt.dialect), func(t *testing.T) {
			query, args, err := builderFor(tt.dialect).
				Update("messages").
				Set("status", "sent").
				Where(sq.Eq{"id": "x"}).
				ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{"sent", "x"}, args)
		})
	}
}
