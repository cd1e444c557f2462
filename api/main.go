package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jimiolaniyan/signup/auth"
	"github.com/jimiolaniyan/signup/config"
	"github.com/jimiolaniyan/signup/signup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	accounts, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Error("open store", "store", cfg.Store, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	addAccount := auth.NewDbAddAccount(auth.NewBcryptEncrypter(cfg.BcryptCost), accounts)
	controller := signup.NewController(signup.NewEmailValidatorAdapter(cfg.MaxEmailLength), addAccount, logger)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           signup.NewRouter(controller),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("server started", "addr", cfg.Addr, "store", cfg.Store)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func openStore(ctx context.Context, cfg config.Config) (auth.Repository, func(), error) {
	switch cfg.Store {
	case config.StoreMongo:
		return openMongo(ctx, cfg)
	case config.StorePostgres:
		return openPostgres(ctx, cfg)
	default:
		return auth.NewAccountRepository(), func() {}, nil
	}
}

func openMongo(ctx context.Context, cfg config.Config) (auth.Repository, func(), error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() { _ = client.Disconnect(context.Background()) }

	if err := client.Ping(ctx, nil); err != nil {
		closeFn()
		return nil, nil, err
	}

	c := client.Database(cfg.MongoDatabase).Collection("accounts")
	if err := auth.EnsureMongoIndexes(ctx, c); err != nil {
		closeFn()
		return nil, nil, err
	}
	return auth.NewMongoAccountRepository(c), closeFn, nil
}

func openPostgres(ctx context.Context, cfg config.Config) (auth.Repository, func(), error) {
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() { _ = db.Close() }

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		closeFn()
		return nil, nil, err
	}

	repo := auth.NewPostgresAccountRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		closeFn()
		return nil, nil, err
	}
	return repo, closeFn, nil
}
