package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/brdocs-api/internal/application/ports"
	"github.com/jhoicas/brdocs-api/internal/application/usecase"
	"github.com/jhoicas/brdocs-api/internal/application/validation"
	"github.com/jhoicas/brdocs-api/internal/domain/entity"
	"github.com/jhoicas/brdocs-api/internal/domain/repository"
	"github.com/jhoicas/brdocs-api/internal/infrastructure/memory"
	"github.com/jhoicas/brdocs-api/internal/infrastructure/postal"
	"github.com/jhoicas/brdocs-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/brdocs-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/brdocs-api/internal/interfaces/http"
	"github.com/jhoicas/brdocs-api/pkg/config"
	"github.com/jhoicas/brdocs-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	seed := entity.SeedCustomer()

	customerRepo, closeStore, err := openStore(ctx, cfg, seed)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén de clientes")
	}
	defer closeStore()
	log.Info().Str("cpf", seed.TaxID).Str("nome", seed.Name).Msg("cliente semilla cargado")

	metrics := httpRouter.NewMetrics("brdocs")

	multi, err := postal.NewFromConfig(cfg.Postal, postal.WithObserver(metrics))
	if err != nil {
		log.Fatal().Err(err).Msg("configurar proveedores de CEP")
	}
	var lookup ports.PostalLookup = multi

	// Caché Redis opcional delante de los proveedores.
	redisClient, err := infraredis.New(ctx, cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("redis no disponible, consultas de CEP sin caché")
	} else if redisClient != nil {
		defer redisClient.Close()
		lookup = postal.NewCachedLookup(redisClient, multi, cfg.Postal.CacheTTL)
		log.Info().Dur("ttl", cfg.Postal.CacheTTL).Msg("caché de CEP activa")
	}

	app := httpRouter.NewApp(httpRouter.RouterDeps{
		AppName:    cfg.App.Name,
		DocumentUC: usecase.NewDocumentUseCase(lookup),
		CustomerUC: usecase.NewCustomerUseCase(customerRepo),
		Checker:    validation.New(),
		Metrics:    metrics,
	})

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStore devuelve el almacén según STORE_DRIVER, ya con el cliente semilla cargado.
func openStore(ctx context.Context, cfg *config.Config, seed entity.Customer) (repository.CustomerRepository, func(), error) {
	if cfg.Store.Driver != config.StorePostgres {
		return memory.NewCustomerRepository(seed), func() {}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}
	repo := postgres.NewCustomerRepository(pool)
	if err := repo.Seed(ctx, seed); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return repo, pool.Close, nil
}
