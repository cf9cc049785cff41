package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gamezone/gamezone/internal/client/migrations"
	"github.com/gamezone/gamezone/internal/client/repositories/metadata"
	"github.com/gamezone/gamezone/internal/client/repositories/tokens"
	"github.com/gamezone/gamezone/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Repositories is the client's local store.
type Repositories struct {
	DB       *sql.DB
	Metadata metadata.Repository
	Tokens   tokens.Repository
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the SQLite file at dsn and applies
// the embedded migrations.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	if err := filex.EnsureParentDir(dsn); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		DB:       db,
		Metadata: metadata.NewSQLiteRepository(db),
		Tokens:   tokens.NewSQLiteRepository(db),
	}, nil
}
