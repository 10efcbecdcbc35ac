package app

import (
	"booking-settlement-api/internal/config"
	"booking-settlement-api/internal/controller"
	"booking-settlement-api/internal/directory"
	"booking-settlement-api/internal/fulfillment"
	"booking-settlement-api/internal/logger"
	"booking-settlement-api/internal/repo"
	"booking-settlement-api/internal/service"
	"booking-settlement-api/pkg/http_server"
	"booking-settlement-api/pkg/postgres"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/labstack/echo"
	"golang.org/x/sync/errgroup"
)

func runMigrations(pg *postgres.Postgres, dir string, log logger.Logger) error {
	driver, err := pgmigrate.WithInstance(pg.Database, &pgmigrate.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	migrations, err := migrate.NewWithDatabaseInstance("file://"+dir, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migration source %s: %w", dir, err)
	}

	if err = migrations.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("no change made by migration scripts")
			return nil
		}
		return fmt.Errorf("migrate up: %w", err)
	}

	version, _, _ := migrations.Version()
	log.Info("migrations applied", "version", version)

	return nil
}

func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log.Level, nil)
	l := log.Action("startup")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l.Info("connecting database")
	postgresDB, err := postgres.NewDB(cfg.Postgres.Conn)
	if err != nil {
		return fmt.Errorf("error occurred while connecting to db: %w", err)
	}
	defer postgresDB.Close()
	postgresDB.LockTimeout = cfg.Postgres.LockTimeout.Std()

	if err = postgresDB.Database.PingContext(ctx); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}

	l.Info("running migrations")
	if err = runMigrations(postgresDB, cfg.Postgres.MigrationsDir, l); err != nil {
		return err
	}

	repositories := repo.NewRepositories(postgresDB)
	companies, err := directory.New(repositories.Company, cfg.Directory.CacheSize, cfg.PayoutFees)
	if err != nil {
		return err
	}
	services := service.NewServices(service.Deps{
		Repos:           repositories,
		Directory:       companies,
		AuctionDuration: cfg.Auction.DefaultDuration.Std(),
		Log:             log,
	})

	handler := echo.New()
	handler.HideBanner = true
	l.Info("setup routes")
	controller.SetupRoutesHandlers(handler, services, cfg.Auth.JWTSecret, log)

	g, gctx := errgroup.WithContext(ctx)

	if cfg.RabbitMQ.Enabled {
		broker, err := fulfillment.NewRabbitMQ(gctx, cfg.RabbitMQ, log)
		if err != nil {
			return err
		}
		defer broker.Close()

		relay := fulfillment.NewRelay(repositories, broker, cfg.Outbox, log)
		consumer := fulfillment.NewConsumer(broker, services.Booking, cfg.RabbitMQ.Queue, cfg.RabbitMQ.Prefetch, log)
		g.Go(func() error { return relay.Run(gctx) })
		g.Go(func() error { return consumer.Run(gctx) })
	} else {
		l.Warn("rabbitmq disabled, outbox events stay queued")
	}

	sweeper := service.NewAuctionSweeper(services.Auction, cfg.Auction.SweepInterval.Std(), cfg.Auction.SweepBatch, log)
	g.Go(func() error { return sweeper.Run(gctx) })

	l.Info("starting server", "address", cfg.Server.Address)
	httpServer := http_server.New(handler, cfg.Server.Address, cfg.Server.ShutdownTimeout.Std())
	g.Go(func() error {
		select {
		case <-gctx.Done():
			l.Info("shutting down")
			return httpServer.Shutdown()
		case err := <-httpServer.Notify():
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("http server: %w", err)
		}
	})

	l.Info("ready to process requests")
	if err = g.Wait(); err != nil {
		return err
	}
	l.Info("successful shutdown")

	return nil
}
