package main

import (
	"context"
	"os"
	"os/signal"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/roommates-project/roommates/internal/config"
	"github.com/roommates-project/roommates/internal/database"
	"github.com/roommates-project/roommates/internal/demo"
	"github.com/roommates-project/roommates/internal/logging"
	"github.com/roommates-project/roommates/internal/repository"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		stop()
		zap.L().Fatal("unhandled error", zap.Error(err))
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "roommates",
		Usage: "walk through CRUD operations on rooms and roommates",
		Flags: config.Flags(),
		Before: func(cctx *cli.Context) (err error) {
			err = logging.Setup(cctx.Bool(config.FlagDebug), cctx.String(config.FlagLogFormat))
			return
		},
		Action: entrypoint,
	}
}

func entrypoint(cctx *cli.Context) (err error) {
	ctx := cctx.Context
	defer func() { _ = zap.L().Sync() }()

	var cfg *config.Config
	if cfg, err = config.FromCLI(cctx); err != nil {
		return
	}

	var db *database.DB
	if db, err = database.Open(cfg); err != nil {
		return
	}
	defer func() { _ = db.Close() }()

	if err = db.Ping(ctx); err != nil {
		return
	}

	err = demo.Run(ctx, demo.Deps{
		Rooms:     repository.NewRoomRepository(db),
		Roommates: repository.NewRoommateRepository(db),
		LookupID:  cfg.LookupID,
		DeleteID:  cfg.DeleteID,
	}, os.Stdin, os.Stdout)

	return
}
