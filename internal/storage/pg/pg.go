// Package pg implements the storage interfaces on top of PostgreSQL.
package pg

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/forum-dev/forum-api/internal/config"
	"github.com/forum-dev/forum-api/internal/generator"
	"github.com/forum-dev/forum-api/internal/logger"
)

type Storage struct {
	db    *sql.DB
	gen   generator.IdGenerator
	clock generator.Clock
}

func New(cfg *config.Config, gen generator.IdGenerator, clock generator.Clock) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Public.Pg.Host, "dbname", cfg.Public.Pg.Dbname)
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")
	return &Storage{db, gen, clock}, nil
}

func Connect(cfg *config.Config) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Public.Pg.Host, cfg.Public.Pg.Port, cfg.Public.Pg.User, cfg.PgPassword(), cfg.Public.Pg.Dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}
