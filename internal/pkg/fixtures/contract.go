//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fixtures_test
package fixtures

import (
	"context"

	"walt/internal/entities"
	"walt/internal/service/catalog"
)

type Registrar interface {
	CreateCity(ctx context.Context, cityModify entities.CityModify) (*entities.City, error)
	CreateDriver(ctx context.Context, registration catalog.Registration) (*entities.Driver, error)
	CreateCustomer(ctx context.Context, registration catalog.Registration) (*entities.Customer, error)
	CreateRestaurant(ctx context.Context, registration catalog.Registration) (*entities.Restaurant, error)
}
