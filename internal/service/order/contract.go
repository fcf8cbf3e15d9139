//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"walt/internal/entities"
	"walt/pkg/logger"
)

type CustomerRepository interface {
	GetByName(ctx context.Context, name string) (*entities.Customer, error)
}

type RestaurantRepository interface {
	GetByName(ctx context.Context, name string) (*entities.Restaurant, error)
}

type DriverRepository interface {
	// GetAllByCityForUpdate возвращает водителей города в порядке id и блокирует их до конца транзакции.
	GetAllByCityForUpdate(ctx context.Context, cityID int64) ([]entities.Driver, error)
	Update(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error)
}

type DeliveryRepository interface {
	Create(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)
}

type DistanceCalculator interface {
	Distance(restaurant entities.Restaurant, customer entities.Customer) int64
}

type EventPublisher interface {
	PublishDeliveryCreated(ctx context.Context, assignment entities.DeliveryAssignment) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
