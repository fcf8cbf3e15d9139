//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=registration_post_test
package registration_post

import (
	"context"

	"walt/internal/entities"
	"walt/internal/service/catalog"
	"walt/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreateDriver(ctx context.Context, registration catalog.Registration) (*entities.Driver, error)
	CreateCustomer(ctx context.Context, registration catalog.Registration) (*entities.Customer, error)
	CreateRestaurant(ctx context.Context, registration catalog.Registration) (*entities.Restaurant, error)
}
