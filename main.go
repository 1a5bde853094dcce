// This is the main entry point of the payroll service.
// It's responsible for initializing configuration, the database pool, services,
// handlers, the HTTP router and middleware, and starting the HTTP server.
// It also handles graceful shutdown and the schema migration commands.
//
// Analogy to Nest.js: This file is similar to `main.ts` in a Nest.js application,
// where the application is bootstrapped and modules are wired together.
//
// @title Payroll API
// @version 1.0
// @description Payroll record-keeping service: users register, log in and manage their own payroll entries.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"os"
	"os/signal"
	"syscall"

	// `godotenv` loads environment variables from a .env file, useful for development.
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/user/payroll-go/apperror"
	"github.com/user/payroll-go/auth"
	"github.com/user/payroll-go/config"
	"github.com/user/payroll-go/db"
	"github.com/user/payroll-go/logging"
	"github.com/user/payroll-go/payroll"
	"github.com/user/payroll-go/server"
	"github.com/user/payroll-go/users"
)

func main() {
	// Bootstrap logger until the configured one exists.
	logger := logging.New(os.Stderr, "info", false)

	// In production, variables are usually set directly rather than through a .env file.
	if err := godotenv.Load(); err != nil {
		logger.Warn().Err(err).Msg(".env file not found or could not be loaded")
	}

	app := &cli.App{
		Name:           "payroll",
		Usage:          "payroll record-keeping service",
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start the HTTP server",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "migrate", Usage: "apply pending migrations before serving"},
				},
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "manage the database schema",
				Subcommands: []*cli.Command{
					{
						Name:   "up",
						Usage:  "apply all pending migrations",
						Action: migrateUp,
					},
					{
						Name:  "down",
						Usage: "revert migrations",
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to revert"},
						},
						Action: migrateDown,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatal().Err(err).Msg("payroll exited with an error")
	}
}

// loadConfig loads the configuration and builds the configured logger.
func loadConfig() (*config.AppConfig, zerolog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	logger := logging.New(os.Stdout, cfg.Server.LogLevel, cfg.Server.IsProduction())
	return cfg, logger, nil
}

func serve(c *cli.Context) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	if c.Bool("migrate") {
		if err := db.RunMigrations(cfg.DB); err != nil {
			return err
		}
		logger.Info().Msg("migrations applied")
	}

	// Cancelled on SIGINT (Ctrl+C) or SIGTERM.
	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()
	logger.Info().Str("database", cfg.DB.DBName).Int("pool_size", cfg.DB.MaxSize).Msg("database pool ready")

	// Services encapsulate business logic; their dependencies are injected here.
	// This is manual dependency injection, common in Go. Nest.js uses a DI container.
	hasher, err := auth.NewHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return err
	}
	tokens := auth.NewTokenService(cfg.Auth)
	mapper := apperror.NewMapper(cfg.Server.IsProduction())

	userStore := users.NewStore(pool, cfg.DB.QueryTimeout)
	authService := auth.NewService(userStore, hasher, tokens)

	payrollStore := payroll.NewStore(pool, cfg.DB.QueryTimeout)
	payrollService := payroll.NewService(payrollStore, payroll.NewValidator())

	router := server.NewRouter(server.Options{
		Config:  cfg.Server,
		Logger:  logger,
		DB:      pool,
		Guard:   auth.Guard(tokens, mapper),
		Auth:    auth.NewHandlers(authService, mapper),
		Payroll: payroll.NewHandler(payrollService, mapper),
	})

	return server.Run(ctx, server.New(cfg.Server, router), logger)
}

func migrateUp(_ *cli.Context) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if err := db.RunMigrations(cfg.DB); err != nil {
		return err
	}
	logger.Info().Msg("migrations applied")
	return nil
}

func migrateDown(c *cli.Context) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	steps := c.Int("steps")
	if err := db.RollbackMigrations(cfg.DB, steps); err != nil {
		return err
	}
	logger.Info().Int("steps", steps).Msg("migrations reverted")
	return nil
}
