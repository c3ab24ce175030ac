package postgres

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"hotel/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName = "postgres"

	// one interactive session per process
	postgresMaxIdleConnection = 1
	postgresMaxOpenConnection = 2
)

var ErrConnectionFailed = errors.New("unable to connect to database")

type Connection struct {
	DB               *sqlx.DB
	StatementTimeout time.Duration
}

// New opens the single database connection used for the whole session.
func New(config *config.Config) (*Connection, error) {
	pg := config.DB.Postgres

	db, err := CreatePostgresConnection(Descriptor(config), pg.Host, pg.Port, pg.Name, pg.MaxRetry, pg.RetryWaitTime)
	if err != nil {
		return nil, err
	}

	return &Connection{
		DB:               db,
		StatementTimeout: time.Duration(pg.StatementTimeoutSeconds) * time.Second,
	}, nil
}

// Close releases the connection. It is safe to call on a nil connection.
func (c *Connection) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}

	if err := c.DB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	return nil
}

// Descriptor builds the connection URL from configuration.
func Descriptor(config *config.Config) string {
	pg := config.DB.Postgres

	descriptor := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(pg.Username, pg.Password),
		Host:     net.JoinHostPort(pg.Host, pg.Port),
		Path:     pg.Name,
		RawQuery: url.Values{"sslmode": []string{pg.SSLMode}}.Encode(),
	}

	return descriptor.String()
}

// CreatePostgresConnection creates a database connection, retrying maxRetry times.
func CreatePostgresConnection(descriptor, host, port, dbName string, maxRetry, waitTime int) (*sqlx.DB, error) {
	if maxRetry < 1 {
		maxRetry = 1
	}

	var lastErr error

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect(driverName, descriptor)
		if err == nil {
			log.
				Debug().
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB, nil
		}

		lastErr = err

		log.
			Error().
			Err(err).
			Str("host", host).
			Str("port", port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		if retry+1 < maxRetry {
			time.Sleep(time.Duration(waitTime) * time.Second)
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, lastErr)
}
