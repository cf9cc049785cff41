package repomanager

import (
	"context"
	"database/sql"

	"github.com/gamezone/gamezone/internal/dbx"
	"github.com/gamezone/gamezone/internal/server/repositories/accounts"
	"github.com/gamezone/gamezone/internal/server/repositories/games"
	"github.com/gamezone/gamezone/internal/server/repositories/reviews"
)

// RepositoryManager vends repositories bound to a DBTX, so the same code
// path serves plain connections and transactions.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Games(db dbx.DBTX) games.Repository
	Reviews(db dbx.DBTX) reviews.Repository
}
