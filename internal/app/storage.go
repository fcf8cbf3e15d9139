package app

import (
	"context"
	"fmt"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"walt/internal/pkg/config"
	"walt/internal/pkg/migrations"
	"walt/internal/pkg/postgres"
	cityRepo "walt/internal/repository/city"
	customerRepo "walt/internal/repository/customer"
	deliveryRepo "walt/internal/repository/delivery"
	driverRepo "walt/internal/repository/driver"
	"walt/internal/repository/memory"
	restaurantRepo "walt/internal/repository/restaurant"
	catalogService "walt/internal/service/catalog"
	orderService "walt/internal/service/order"
	reportService "walt/internal/service/report"
	"walt/pkg/logger"
	"walt/pkg/querier"
	"walt/pkg/tx"
)

type CityRepository interface {
	catalogService.CityRepository
	reportService.CityRepository
}

type DriverRepository interface {
	catalogService.DriverRepository
	orderService.DriverRepository
	reportService.DriverRepository
}

type CustomerRepository interface {
	catalogService.CustomerRepository
	orderService.CustomerRepository
}

type RestaurantRepository interface {
	catalogService.RestaurantRepository
	orderService.RestaurantRepository
}

type DeliveryRepository interface {
	catalogService.DeliveryRepository
	orderService.DeliveryRepository
}

type TxManager interface {
	orderService.TxManager
	reportService.TxManager
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Storage - репозитории выбранного хранилища. Сервисы не знают, postgres это или память.
type Storage struct {
	Cities      CityRepository
	Drivers     DriverRepository
	Customers   CustomerRepository
	Restaurants RestaurantRepository
	Deliveries  DeliveryRepository
	TxManager   TxManager

	pinger pinger
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.pinger.Ping(ctx)
}

func NewMemoryStorage() *Storage {
	store := memory.New()

	return &Storage{
		Cities:      store.Cities(),
		Drivers:     store.Drivers(),
		Customers:   store.Customers(),
		Restaurants: store.Restaurants(),
		Deliveries:  store.Deliveries(),
		TxManager:   store.TxManager(),
		pinger:      store,
	}
}

// NewStorage открывает хранилище из cfg.Storage.Driver. Для postgres cleanup закрывает пул.
func NewStorage(ctx context.Context, log logger.Logger, cfg *config.Config) (*Storage, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		log.Warn("using in-memory storage, data is lost on restart")
		return NewMemoryStorage(), func() {}, nil
	case config.StorageDriverPostgres:
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database: %w", err)
	}

	if cfg.Storage.MigrateOnStart {
		if err := migrations.Up(ctx, log, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("migrations: %w", err)
		}
	}

	q := querier.New(pool, pgxv5.DefaultCtxGetter)
	storage := &Storage{
		Cities:      cityRepo.New(q),
		Drivers:     driverRepo.New(q),
		Customers:   customerRepo.New(q),
		Restaurants: restaurantRepo.New(q),
		Deliveries:  deliveryRepo.New(q),
		TxManager:   tx.New(pool),
		pinger:      pool,
	}
	return storage, pool.Close, nil
}
