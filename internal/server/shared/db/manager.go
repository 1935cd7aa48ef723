// Package db wires the repositories to a concrete database. The manager
// owns the connection, runs migrations, and hands out repository instances.
package db

import (
	"context"
	"database/sql"

	"cloudtracker/internal/server/documents"
	"cloudtracker/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Documents() documents.Repository
	Close() error
}
