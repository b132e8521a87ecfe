package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	_ "github.com/paqueteria/logistics-api/docs" // swagger docs

	"github.com/paqueteria/logistics-api/internal/api"
	"github.com/paqueteria/logistics-api/internal/core/service"
	mongodb "github.com/paqueteria/logistics-api/internal/infrastructure/db/mongo"
	"github.com/paqueteria/logistics-api/internal/infrastructure/db/mysql"
	redisdb "github.com/paqueteria/logistics-api/internal/infrastructure/db/redis"
	"github.com/paqueteria/logistics-api/internal/infrastructure/http/handlers"
	"github.com/paqueteria/logistics-api/internal/infrastructure/queue"
	"github.com/paqueteria/logistics-api/internal/pkg/config"
	"github.com/paqueteria/logistics-api/pkg/logger"
)

const serviceName = "logistics-api"

// @title Logistics API
// @version 1.0
// @description REST gateway for paquetes, clientes, personas, facturas, rutas and centros de distribución.
// @BasePath /
// @schemes http
// @securityDefinitions.apikey TokenAuth
// @in header
// @name authorization
// @description Raw token returned by /api/auth/login. A "Bearer " prefix is also accepted.
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx := context.Background()

	// --- Stores ---
	db, err := mysql.Connect(ctx, mysql.Config{
		DSN:             cfg.MySQL.DSN,
		MaxOpenConns:    cfg.MySQL.MaxOpenConns,
		MaxIdleConns:    cfg.MySQL.MaxIdleConns,
		ConnMaxLifetime: cfg.MySQL.ConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := mysql.Close(db); err != nil {
			log.Error().Err(err).Msg("closing mysql pool")
		}
	}()

	mongoClient, auditDB, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  serviceName,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := mongodb.Disconnect(mongoClient); err != nil {
			log.Error().Err(err).Msg("disconnecting mongo")
		}
	}()
	if err := mongodb.EnsureAuditIndexes(ctx, auditDB); err != nil {
		log.Warn().Err(err).Msg("audit indexes not ensured")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("closing redis")
		}
	}()

	// --- Audit trail ---
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, service.NewAuditService(mongodb.NewAuditRepository(auditDB)), log)
	dispatcher.Start()
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := dispatcher.Stop(stopCtx); err != nil {
			log.Warn().Err(err).Msg("audit dispatcher did not drain before timeout")
		}
	}()

	// --- Repositories ---
	qt := cfg.MySQL.QueryTimeout
	credentialRepo := mysql.NewAuthRepository(db, qt)
	personaRepo := mysql.NewPersonaRepository(db, qt)
	clienteRepo := mysql.NewClienteRepository(db, qt)
	paqueteRepo := mysql.NewPaqueteRepository(db, qt)
	facturaRepo := mysql.NewFacturaRepository(db, qt)
	rutaRepo := mysql.NewRutaRepository(db, qt)
	centroRepo := mysql.NewCentroRepository(db, qt)

	// --- Services ---
	tokens := service.NewTokenService(cfg.Auth.JWTSecret, service.DefaultTokenTTL)
	authService, err := service.NewAuthService(
		credentialRepo,
		service.NewBcryptHasher(cfg.Auth.BcryptCost),
		tokens,
		dispatcher,
		service.AuthOptions{UniformLoginErrors: cfg.Auth.UniformLoginErrors},
		log,
	)
	if err != nil {
		return err
	}

	e := api.NewRouter(api.Dependencies{
		Log:         log,
		Tokens:      tokens,
		Auth:        authService,
		Personas:    service.NewPersonaService(personaRepo),
		Clientes:    service.NewClienteService(clienteRepo, personaRepo),
		Paquetes:    service.NewPaqueteService(paqueteRepo, dispatcher),
		Facturas:    service.NewFacturaService(facturaRepo, dispatcher),
		Rutas:       service.NewRutaService(rutaRepo, dispatcher),
		Centros:     service.NewCentroService(centroRepo),
		Idempotency: redisdb.NewIdempotencyStore(rdb, cfg.Redis.IdempotencyTTL),
		Readiness: []handlers.DependencyCheck{
			handlers.MySQLCheck(db),
			handlers.MongoCheck(mongoClient),
			handlers.RedisCheck(rdb),
		},
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	// --- Serve until signalled ---
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case sig := <-shutdownCh:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info().Dur("timeout", cfg.HTTP.ShutdownTimeout).Msg("server stopped, releasing resources")
	return nil
}

