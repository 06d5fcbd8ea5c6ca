package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"

	"beauteefool/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationsSource = "file://migrations/postgres"

type migrationStep struct {
	run  func(*migrate.Migrate) error
	done string
}

var steps = map[string]migrationStep{
	"up":      {run: (*migrate.Migrate).Up, done: "Database migrations completed successfully"},
	"step-up": {run: func(m *migrate.Migrate) error { return m.Steps(1) }, done: "Database migrated one version up"},
	"down":    {run: func(m *migrate.Migrate) error { return m.Steps(-1) }, done: "Database migrated one version down"},
	"drop":    {run: (*migrate.Migrate).Down, done: "Database migrations rolled back successfully"},
}

func getConnection(cfg *config.Config) (*migrate.Migrate, error) {
	endpoint := cfg.DB.Postgres.Write
	params := url.Values{}

	if cfg.DB.Postgres.MigrationTable != "" {
		params.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)
	}

	mig, err := migrate.New(migrationsSource, endpoint.URL(cfg.PostgresDBName(endpoint.Name), params))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Runner applies action against the write database. Unknown actions fail.
func Runner(cfg *config.Config, action string) error {
	step, ok := steps[action]
	if !ok {
		return fmt.Errorf("unknown migration action %q", action)
	}

	mig, err := getConnection(cfg)
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	if err := step.run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migration %s: %w", action, err)
	}

	log.Info().Str("action", action).Msg(step.done)

	return nil
}

// Up applies every pending migration.
func Up(cfg *config.Config) error {
	return Runner(cfg, "up")
}
