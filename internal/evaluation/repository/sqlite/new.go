package sqlite

import (
	"context"
	"database/sql"

	"agentforge/internal/evaluation/repository"
	"agentforge/pkg/log"
	pkgsqlite "agentforge/pkg/sqlite"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New migrates the feedback table and returns the repository.
func New(ctx context.Context, db *sql.DB, l log.Logger) (repository.Repository, error) {
	if err := pkgsqlite.Migrate(ctx, db, ddlFeedback); err != nil {
		return nil, err
	}
	return &implRepository{
		db: db,
		l:  log.OrNop(l),
	}, nil
}
