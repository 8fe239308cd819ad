package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/around/internal/server/migrations"
	"github.com/dmitrijs2005/around/internal/server/repositories/cards"
	"github.com/dmitrijs2005/around/internal/server/repositories/users"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories sharing
// one connection pool.
type PostgresRepositoryManager struct {
	db *sql.DB
}

// sqlOpen and migrateUp are seams for tests.
var (
	sqlOpen   = sql.Open
	migrateUp = func(ctx context.Context, db *sql.DB) error {
		provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.Migrations)
		if err != nil {
			return fmt.Errorf("goose provider: %w", err)
		}
		_, err = provider.Up(ctx)
		return err
	}
)

// NewPostgresRepositoryManager connects to dsn and brings the schema up to
// date.
func NewPostgresRepositoryManager(ctx context.Context, dsn string) (*PostgresRepositoryManager, error) {
	db, err := sqlOpen("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := migrateUp(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &PostgresRepositoryManager{db: db}, nil
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return users.NewPostgresRepository(m.db)
}

func (m *PostgresRepositoryManager) Cards() cards.Repository {
	return cards.NewPostgresRepository(m.db)
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

// New picks the in-memory manager for an empty dsn.
func New(ctx context.Context, dsn string) (RepositoryManager, error) {
	if dsn == "" {
		return NewMemoryRepositoryManager(), nil
	}
	return NewPostgresRepositoryManager(ctx, dsn)
}
