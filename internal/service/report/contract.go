//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_test
package report

import (
	"context"

	"walt/internal/entities"
)

type DriverRepository interface {
	GetAll(ctx context.Context) ([]entities.Driver, error)
	GetAllByCity(ctx context.Context, cityID int64) ([]entities.Driver, error)
}

type CityRepository interface {
	GetByName(ctx context.Context, name string) (*entities.City, error)
}

type TxManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
