package postgres

//nolint:revive
import (
	"context"
	"errors"
	"frontdesk/config"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	maxIdleConnections = 10
	maxOpenConnections = 10
	connMaxLifetime    = 30 * time.Minute
	connMaxIdleTime    = 5 * time.Minute
)

// Connection keeps the read replica and the primary apart. Every transaction runs on Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New opens the primary and, when configured, the replica. Without a replica host reads share the primary pool.
func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	conn := &Connection{
		Write: connect("write", DSN(pg.Write, pg.Prefix), pg.MaxRetry, pg.RetryWaitTime),
	}

	if pg.Read.Host == "" {
		conn.Read = conn.Write
	} else {
		conn.Read = connect("read", DSN(pg.Read, pg.Prefix), pg.MaxRetry, pg.RetryWaitTime)
	}

	if conn.Read == nil || conn.Write == nil {
		log.Fatal().Msg("Could not connect to postgres after all retries")
	}

	return conn
}

// Ping checks both pools.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.Write.PingContext(ctx); err != nil {
		return err
	}

	if c.Read != c.Write {
		return c.Read.PingContext(ctx)
	}

	return nil
}

// Close closes both pools, once each when they share the same handle.
func (c *Connection) Close() error {
	var errs []error

	if c.Write != nil {
		errs = append(errs, c.Write.Close())
	}

	if c.Read != nil && c.Read != c.Write {
		errs = append(errs, c.Read.Close())
	}

	return errors.Join(errs...)
}

// DSN builds a lib/pq connection URL. The database name gets the optional prefix.
func DSN(pg config.Postgres, prefix string) string {
	query := url.Values{}
	query.Set("sslmode", pg.SSLMode)

	if pg.Timezone != "" {
		query.Set("timezone", pg.Timezone)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(pg.Host, pg.Port),
		Path:     "/" + prefix + pg.Name,
		RawQuery: query.Encode(),
	}

	if pg.Username != "" {
		dsn.User = url.UserPassword(pg.Username, pg.Password)
	}

	return dsn.String()
}

func connect(name, dsn string, maxRetry, waitSeconds int) *sqlx.DB {
	logger := log.With().Str("name", name).Logger()

	for attempt := 1; attempt <= max(maxRetry, 1); attempt++ {
		db, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			db.SetConnMaxLifetime(connMaxLifetime)
			db.SetConnMaxIdleTime(connMaxIdleTime)

			logger.Info().Msg("Connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	return nil
}
