// Package database opens the site's SQL store. SQLite (pure Go) is the default;
// a postgres:// URL switches to PostgreSQL through pgx's database/sql driver.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Dialect names match goose's dialect identifiers.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "postgres"
)

const sqlitePragmas = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_time_format=sqlite"

// DB wraps a *sql.DB with its dialect and a matching statement builder.
type DB struct {
	sql     *sql.DB
	dialect Dialect
	builder sq.StatementBuilderType
}

// SQL returns the underlying handle.
func (db *DB) SQL() *sql.DB {
	return db.sql
}

// Dialect returns the active dialect.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Builder returns a squirrel builder using the dialect's placeholders.
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}

// Ping checks the connection.
func (db *DB) Ping(ctx context.Context) error {
	return db.sql.PingContext(ctx)
}

// Close closes the database.
func (db *DB) Close() error {
	return db.sql.Close()
}

// Open connects to databaseURL and verifies the connection.
func Open(ctx context.Context, databaseURL string, log *zap.Logger) (*DB, error) {
	dialect, driver, dsn := parseURL(databaseURL)

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	switch dialect {
	case DialectSQLite:
		// One writer at a time; more connections only produce SQLITE_BUSY.
		conn.SetMaxOpenConns(1)
	case DialectPostgres:
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(2)
		conn.SetConnMaxIdleTime(5 * time.Minute)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info("database connected", zap.String("dialect", string(dialect)))

	return &DB{
		sql:     conn,
		dialect: dialect,
		builder: builderFor(dialect),
	}, nil
}

// builderFor returns a statement builder with the dialect's bind placeholders.
func builderFor(dialect Dialect) sq.StatementBuilderType {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == DialectPostgres {
		placeholder = sq.Dollar
	}
	return sq.StatementBuilder.PlaceholderFormat(placeholder)
}

// parseURL maps a database URL to (dialect, driver name, DSN).
func parseURL(databaseURL string) (Dialect, string, string) {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return DialectPostgres, "pgx", databaseURL
	}

	dsn := strings.TrimPrefix(databaseURL, "sqlite://")
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	if !strings.Contains(dsn, "_pragma=") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + sqlitePragmas
	}
	return DialectSQLite, "sqlite", dsn
}
