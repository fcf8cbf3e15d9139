//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_post_test
package delivery_post

import (
	"context"
	"time"

	"walt/internal/entities"
	"walt/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreateOrderByNames(ctx context.Context, customerName, restaurantName string, deliveryTime time.Time) (*entities.DeliveryAssignment, error)
}
