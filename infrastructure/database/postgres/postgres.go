package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/config"
)

// Connection embrulha o pool padrão do database/sql para o Postgres.
type Connection struct {
	*sql.DB
}

func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return &Connection{DB: db}, nil
}
