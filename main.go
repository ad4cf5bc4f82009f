package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"reflect"
	"strings"
	"syscall"
	"time"

	"github.com/VxidDev/eduDuck/api"
	db "github.com/VxidDev/eduDuck/db/sqlc"
	"github.com/VxidDev/eduDuck/tmpstore"
	"github.com/VxidDev/eduDuck/token"
	"github.com/VxidDev/eduDuck/util"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	config, err := util.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read config file")
	}

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	useJSONFieldNames()

	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	store, err := connectStore(ctx, config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to the database")
	}

	runDBMigration(config.MigrationURL, config.DBSource)

	waitGroup, ctx := errgroup.WithContext(ctx)

	RunGinServer(ctx, waitGroup, config, store)

	if err := waitGroup.Wait(); err != nil {
		log.Fatal().Err(err).Msg("error from wait group")
	}
}

// useJSONFieldNames makes binding errors name fields the way clients send them.
func useJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// connectStore opens the pool and checks that postgres answers before serving.
func connectStore(ctx context.Context, dbSource string) (db.Store, error) {
	pool, err := pgxpool.New(ctx, dbSource)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}

	return db.NewStore(pool), nil
}

// runDBMigration brings the users and quiz_results tables up to date.
func runDBMigration(migrationURL string, dbSource string) {
	mig, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create new migrate instance")
	}
	defer mig.Close()

	if err = mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal().Err(err).Msg("failed to run migrate up")
	}

	version, dirty, err := mig.Version()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read schema version")
	}

	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("db migrated successfully")
}

func RunGinServer(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	store db.Store,
) {
	qs := tmpstore.NewStore(&config)

	tokenMaker, err := token.NewJWTMaker(config.TokenSymmetricKey)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create JWT token maker")
	}

	service, err := api.NewService(config, store, tokenMaker, qs)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create HTTP service")
	}

	waitGroup.Go(func() error {
		log.Info().
			Str("address", config.HTTPServerAddress).
			Bool("strict_markers", config.QuizStrictMarkers).
			Dur("quiz_ttl", config.QuizTTL).
			Msg("start HTTP server")

		err := service.Start()

		if err != nil {
			// http.ErrServerClosed is returned once the server begins shutting down
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			log.Error().Err(err).Msg("cannot start HTTP server")
		}

		return err
	})

	waitGroup.Go(func() error {
		<-ctx.Done()

		log.Info().Msg("HTTP server: graceful shutdown")

		// in-flight gradings get 5 seconds to reach postgres
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := service.Shutdown(shutdownCtx)
		if err != nil {
			log.Error().Err(err).Msg("cannot shutdown HTTP server gracefully")
		}

		store.Shutdown()

		log.Info().Msg("HTTP server is stopped")

		return err
	})
}
