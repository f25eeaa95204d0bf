package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"nomad/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

// Action is a migration command accepted by cmd/migrate.
type Action string

const (
	ActionUp     Action = "up"
	ActionDown   Action = "down"
	ActionStepUp Action = "step-up"
	ActionDrop   Action = "drop"
)

var ErrUnknownAction = errors.New("unknown migration action")

var actions = map[Action]func(*migrate.Migrate) error{
	ActionUp:     (*migrate.Migrate).Up,
	ActionDown:   func(m *migrate.Migrate) error { return m.Steps(-1) },
	ActionStepUp: func(m *migrate.Migrate) error { return m.Steps(1) },
	ActionDrop:   (*migrate.Migrate).Down,
}

// Actions lists the supported commands in usage order.
func Actions() []Action {
	return []Action{ActionUp, ActionDown, ActionStepUp, ActionDrop}
}

func open(cfg *config.Config) (*migrate.Migrate, error) {
	pg := cfg.DB.Postgres
	dsn := pg.Write.DSN(pg.Prefix, url.Values{"x-migrations-table": {pg.MigrationTable}})

	mig, err := migrate.New(pg.MigrationSource, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating migrate instance: %w", err)
	}

	return mig, nil
}

// Run applies action against the write database. An already current schema is not an error.
func Run(cfg *config.Config, action Action) error {
	step, ok := actions[action]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	mig, err := open(cfg)
	if err != nil {
		return err
	}
	defer mig.Close()

	if err := step(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration %s: %w", action, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("reading migration version: %w", err)
	}

	log.Info().Str("action", string(action)).Uint("version", version).Bool("dirty", dirty).Msg("Database migration finished")

	return nil
}

func Up(cfg *config.Config) error {
	return Run(cfg, ActionUp)
}
