//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=catalog_test
package catalog

import (
	"context"

	"walt/internal/entities"
)

type CityRepository interface {
	Create(ctx context.Context, cityModify entities.CityModify) (*entities.City, error)
	GetByName(ctx context.Context, name string) (*entities.City, error)
	GetByID(ctx context.Context, id int64) (*entities.City, error)
	GetAll(ctx context.Context) ([]entities.City, error)
}

type DriverRepository interface {
	Create(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error)
	GetByName(ctx context.Context, name string) (*entities.Driver, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customerModify entities.CustomerModify) (*entities.Customer, error)
}

type RestaurantRepository interface {
	Create(ctx context.Context, restaurantModify entities.RestaurantModify) (*entities.Restaurant, error)
}

type DeliveryRepository interface {
	CountByDriverID(ctx context.Context, driverID int64) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
