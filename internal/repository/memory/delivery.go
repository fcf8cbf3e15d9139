package memory

import (
	"context"
	"errors"

	"walt/internal/entities"
)

var (
	errNegativeDistance  = errors.New("distance must not be negative")
	ErrDanglingReference = errors.New("delivery references a missing record")
)

type DeliveryRepository struct {
	store *Store
}

func (r *DeliveryRepository) Create(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	var created entities.Delivery
	err := r.store.mutate(ctx, func() (func(), error) {
		driverID := derefInt64(deliveryModify.DriverID)
		restaurantID := derefInt64(deliveryModify.RestaurantID)
		customerID := derefInt64(deliveryModify.CustomerID)

		if _, ok := r.store.drivers[driverID]; !ok {
			return nil, ErrDanglingReference
		}
		if _, ok := r.store.restaurants[restaurantID]; !ok {
			return nil, ErrDanglingReference
		}
		if _, ok := r.store.customers[customerID]; !ok {
			return nil, ErrDanglingReference
		}

		distance := derefInt64(deliveryModify.Distance)
		if distance < 0 {
			return nil, errNegativeDistance
		}

		created = entities.Delivery{
			ID:           r.store.nextID(),
			DriverID:     driverID,
			RestaurantID: restaurantID,
			CustomerID:   customerID,
			Distance:     distance,
			CreatedAt:    r.store.now(),
		}
		if deliveryModify.DeliveryTime != nil {
			created.DeliveryTime = deliveryModify.DeliveryTime.UTC()
		}
		r.store.deliveries[created.ID] = created

		return func() {
			delete(r.store.deliveries, created.ID)
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *DeliveryRepository) CountByDriverID(_ context.Context, driverID int64) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, delivery := range r.store.deliveries {
		if delivery.DriverID == driverID {
			count++
		}
	}
	return count, nil
}
