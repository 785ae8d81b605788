package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mediavault/vault-bot/internal/config"
	"github.com/mediavault/vault-bot/internal/domain/userpref"
	"github.com/mediavault/vault-bot/internal/domain/vault"
	"github.com/mediavault/vault-bot/internal/infrastructure/database"
	"github.com/mediavault/vault-bot/internal/infrastructure/logger"
	itemrepo "github.com/mediavault/vault-bot/internal/infrastructure/repository/item"
	userprefrepo "github.com/mediavault/vault-bot/internal/infrastructure/repository/userpref"
	"github.com/mediavault/vault-bot/internal/infrastructure/telegram"
	"github.com/mediavault/vault-bot/internal/interfaces/bot"
	"github.com/mediavault/vault-bot/internal/interfaces/httpserver"
)

// Application runs the update loop and the ops HTTP server side by side;
// either one failing brings the whole process down.
type Application struct {
	bot        *bot.Bot
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(b *bot.Bot, httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		bot:        b,
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error { return a.bot.Run(ctx) })
	group.Go(func() error { return a.httpServer.Run(ctx) })
	return group.Wait()
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := database.AutoMigrate(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	tgClient, err := telegram.NewClient(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("connect telegram")
	}

	vaultService := vault.NewService(itemrepo.NewRepository(db), tgClient, log)
	prefService := userpref.NewService(userprefrepo.NewRepository(db), log)

	b := bot.New(tgClient, vaultService, prefService, cfg, log)
	httpServer := httpserver.New(cfg, log, db)
	app := NewApplication(b, httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
