// Package config holds the runtime settings that used to be a hard-coded
// connection string, and the CLI flags they are read from.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/urfave/cli/v2"
)

const (
	FlagDebug       = "debug"
	FlagPostgresURI = "postgres-uri"
	FlagLookupID    = "lookup-id"
	FlagDeleteID    = "delete-id"
	FlagLogFormat   = "log-format"
)

type Config struct {
	Debug     bool
	LogFormat string `validate:"oneof=json console"`

	// URL or keyword/value form; anything pgx.ParseConfig accepts.
	PostgresURI string `validate:"required"`

	// Identifiers the demo fetches and deletes.
	LookupID int64 `validate:"gt=0"`
	DeleteID int64 `validate:"gt=0"`
}

func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  FlagDebug,
			Value: false,
			EnvVars: []string{
				"ROOMMATES_DEBUG",
			},
		},
		&cli.StringFlag{
			Name:  FlagLogFormat,
			Usage: "json or console",
			Value: "json",
			EnvVars: []string{
				"ROOMMATES_LOG_FORMAT",
			},
		},
		&cli.StringFlag{
			Name:     FlagPostgresURI,
			Required: true,
			EnvVars: []string{
				"ROOMMATES_POSTGRES_URI",
			},
		},
		&cli.Int64Flag{
			Name:  FlagLookupID,
			Value: 1,
			EnvVars: []string{
				"ROOMMATES_LOOKUP_ID",
			},
		},
		&cli.Int64Flag{
			Name:  FlagDeleteID,
			Value: 10,
			EnvVars: []string{
				"ROOMMATES_DELETE_ID",
			},
		},
	}
}

func FromCLI(cctx *cli.Context) (cfg *Config, err error) {
	cfg = &Config{
		Debug:       cctx.Bool(FlagDebug),
		LogFormat:   cctx.String(FlagLogFormat),
		PostgresURI: cctx.String(FlagPostgresURI),
		LookupID:    cctx.Int64(FlagLookupID),
		DeleteID:    cctx.Int64(FlagDeleteID),
	}

	if err = cfg.Validate(); err != nil {
		cfg = nil
	}
	return
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
