package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/Satyam7Parsad/hotel-management-system/config"
)

// The store serializes every transaction behind a mutex, so the pool is
// pinned to a single physical connection.
const (
	postgresMaxIdleConnection = 1
	postgresMaxOpenConnection = 1
)

// Connect creates the single database connection the store runs on. It is
// fatal when every retry is exhausted; the process cannot run without a
// database.
func Connect(config *config.Config) *sqlx.DB {
	db, err := createPostgresConnection(
		config.DB.Postgres.Username,
		config.DB.Postgres.Password,
		config.DB.Postgres.Host,
		config.DB.Postgres.Port,
		config.DB.Postgres.Name,
		config.DB.Postgres.SSLMode,
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
	if err != nil {
		log.
			Fatal().
			Err(err).
			Str("host", config.DB.Postgres.Host).
			Str("port", config.DB.Postgres.Port).
			Str("dbName", config.DB.Postgres.Name).
			Msg("Giving up connecting to database")
	}

	return db
}

func createPostgresConnection(username, password, host, port, dbName, sslMode string, maxRetry, waitTime int) (*sqlx.DB, error) {
	descriptor := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		username,
		password,
		net.JoinHostPort(host, port),
		dbName,
		sslMode,
	)

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB, nil
		}

		log.
			Error().
			Err(err).
			Str("host", host).
			Str("port", port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil, fmt.Errorf("database unreachable after %d attempts", maxRetry)
}
