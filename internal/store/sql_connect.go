package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-cash-card/internal/config"
	"github.com/MKhiriev/go-cash-card/internal/logger"
	"github.com/MKhiriev/go-cash-card/migrations"
)

// NewConnect opens the database named by cfg, checks it is reachable,
// applies migrations and optionally seeds the demo cards.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case migrations.DialectPostgres, migrations.DialectSQLite:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	// establish connection
	conn, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	if cfg.Driver == migrations.DialectSQLite {
		// an in-memory database lives exactly as long as its connection
		conn.SetMaxOpenConns(1)
	} else if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	db := newDB(conn, cfg.Driver, log)

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error migrating database")
		conn.Close()
		return nil, err
	}

	if cfg.Seed {
		if err = db.Seed(); err != nil {
			log.Err(err).Str("func", "NewConnect").Msg("error seeding database")
			conn.Close()
			return nil, err
		}
	}

	log.Info().Str("func", "NewConnect").Str("driver", cfg.Driver).Bool("seed", cfg.Seed).Msg("connected to database successfully")

	return db, nil
}
