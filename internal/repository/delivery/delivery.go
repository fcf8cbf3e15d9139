package delivery

import (
	"context"
	"errors"
	"fmt"

	"walt/internal/entities"
	"walt/internal/repository"
)

var ErrDanglingReference = errors.New("delivery references a missing record")

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	deliveryModifyDB := FromDomainModify(&deliveryModify)

	query := `
		INSERT INTO deliveries (driver_id, restaurant_id, customer_id, delivery_time, distance)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, driver_id, restaurant_id, customer_id, delivery_time, distance, created_at
	`

	var deliveryDB DeliveryDB
	err := r.querier.QueryRow(
		ctx,
		query,
		deliveryModifyDB.DriverID,
		deliveryModifyDB.RestaurantID,
		deliveryModifyDB.CustomerID,
		deliveryModifyDB.DeliveryTime,
		deliveryModifyDB.Distance,
	).Scan(
		&deliveryDB.ID,
		&deliveryDB.DriverID,
		&deliveryDB.RestaurantID,
		&deliveryDB.CustomerID,
		&deliveryDB.DeliveryTime,
		&deliveryDB.Distance,
		&deliveryDB.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, ErrDanglingReference
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) CountByDriverID(ctx context.Context, driverID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM deliveries
		WHERE driver_id = $1
	`

	var count int64
	if err := r.querier.QueryRow(ctx, query, driverID).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected delivery repository count error: %w", err)
	}
	return count, nil
}
