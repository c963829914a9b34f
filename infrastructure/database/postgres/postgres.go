package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/pointnow/admin-bff/internal/config"
)

// Conn is the handle the settings store and the migration script share
type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}

type Connection struct {
	*sql.DB
}

// NewConnection opens the pool described by cfg and verifies it with a ping
func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "postgres: open")
	}

	conn := Wrap(db)
	conn.configurePool(cfg)

	if err := conn.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "postgres: ping")
	}

	return conn, nil
}

// Wrap adopts an already opened handle
func Wrap(db *sql.DB) *Connection {
	return &Connection{DB: db}
}

func (c *Connection) configurePool(cfg config.Database) {
	if cfg.MaxOpenConns > 0 {
		c.DB.SetMaxOpenConns(cfg.MaxOpenConns)
		c.DB.SetMaxIdleConns(cfg.MaxOpenConns / 2)
	}
	if cfg.ConnMaxLifetime > 0 {
		c.DB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// RunInTransaction commits when fn returns nil and rolls back otherwise.
// A panic inside fn rolls back before it propagates.
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "postgres: begin")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Wrapf(err, "postgres: rollback failed: %v", rbErr)
		}
		return err
	}

	return errors.Wrap(tx.Commit(), "postgres: commit")
}
