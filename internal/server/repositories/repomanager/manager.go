package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/droply/internal/dbx"
	"github.com/dmitrijs2005/droply/internal/server/repositories/entries"
)

// RepositoryManager hands out repositories bound to a DBTX, so services can
// run them against the shared pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Entries(db dbx.DBTX) entries.Repository
}
