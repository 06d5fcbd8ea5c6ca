package postgres

//nolint:revive
import (
	"time"

	"beauteefool/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName      = "postgres"
	maxIdleConns    = 10
	maxOpenConns    = 10
	connMaxLifetime = 30 * time.Minute
)

// Connection holds the read replica and primary pools. Bookings are written
// through Write and listed through Read.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	return &Connection{
		Read:  connect(cfg, "read", cfg.DB.Postgres.Read),
		Write: connect(cfg, "write", cfg.DB.Postgres.Write),
	}
}

// connect retries until the database accepts connections or MaxRetry is
// spent. A nil pool means every attempt failed.
func connect(cfg *config.Config, role string, endpoint config.PostgresEndpoint) *sqlx.DB {
	dbName := cfg.PostgresDBName(endpoint.Name)
	logger := log.With().Str("role", role).Str("host", endpoint.Host).Str("db", dbName).Logger()
	wait := time.Duration(cfg.DB.Postgres.RetryWaitTime) * time.Second

	for attempt := 1; attempt <= max(cfg.DB.Postgres.MaxRetry, 1); attempt++ {
		db, err := sqlx.Connect(driverName, endpoint.URL(dbName, nil))
		if err == nil {
			db.SetMaxIdleConns(maxIdleConns)
			db.SetMaxOpenConns(maxOpenConns)
			db.SetConnMaxLifetime(connMaxLifetime)

			logger.Info().Int("attempt", attempt).Msg("Connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")
		time.Sleep(wait)
	}

	return nil
}
