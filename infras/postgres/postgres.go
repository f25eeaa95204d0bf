package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"nomad/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName         = "postgres"
	maxIdleConnections = 10
	maxOpenConnections = 10
	connMaxLifetime    = 30 * time.Minute
)

// Connection holds the read replica pool and the primary pool. Reads in the
// generic repository go to Read; inserts, updates and transactions go to Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	conn := &Connection{
		Read:  connect("read", pg.Read, pg),
		Write: connect("write", pg.Write, pg),
	}

	if conn.Read == nil || conn.Write == nil {
		log.Fatal().Int("maxRetry", pg.MaxRetry).Msg("Exhausted retries connecting to database")
	}

	return conn
}

// Ping checks both pools.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("write pool: %w", err)
	}

	if err := c.Read.PingContext(ctx); err != nil {
		return fmt.Errorf("read pool: %w", err)
	}

	return nil
}

func (c *Connection) Close() {
	for name, db := range map[string]*sqlx.DB{"read": c.Read, "write": c.Write} {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Str("name", name).Msg("Failed to close database connection")
		}
	}
}

func connect(name string, node config.PostgresNode, pg config.Postgres) *sqlx.DB {
	logger := log.With().
		Str("name", name).
		Str("host", node.Host).
		Str("port", node.Port).
		Str("dbName", pg.Prefix+node.Name).
		Logger()

	dsn := node.DSN(pg.Prefix, nil)

	for attempt := 1; attempt <= pg.MaxRetry; attempt++ {
		db, err := sqlx.Connect(driverName, dsn)
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			db.SetConnMaxLifetime(connMaxLifetime)

			logger.Info().Msg("Connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
	}

	return nil
}
