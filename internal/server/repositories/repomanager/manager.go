// Package repomanager hands out repositories bound to a database handle.
// Passing a transactional handle (dbx.WithTx) makes every repository
// obtained from it participate in the same transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/Wilovy09/pgmq-test/internal/dbx"
	"github.com/Wilovy09/pgmq-test/internal/server/repositories/resettokens"
	"github.com/Wilovy09/pgmq-test/internal/server/repositories/roles"
	"github.com/Wilovy09/pgmq-test/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Roles(db dbx.DBTX) roles.Repository
	ResetTokens(db dbx.DBTX) resettokens.Repository
}
