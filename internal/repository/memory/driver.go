package memory

import (
	"context"

	"walt/internal/entities"
)

type DriverRepository struct {
	store *Store
}

func (r *DriverRepository) Create(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	var created entities.Driver
	err := r.store.mutate(ctx, func() (func(), error) {
		name := derefString(driverModify.Name)
		if _, ok := r.store.driverByName[name]; ok {
			return nil, entities.ErrConflict
		}
		cityID := derefInt64(driverModify.CityID)
		if _, ok := r.store.cities[cityID]; !ok {
			return nil, entities.ErrCityNotFound
		}

		now := r.store.now()
		created = entities.Driver{
			ID:        r.store.nextID(),
			Name:      name,
			CityID:    cityID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		r.store.drivers[created.ID] = created
		r.store.driverByName[name] = created.ID

		return func() {
			delete(r.store.drivers, created.ID)
			delete(r.store.driverByName, name)
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return copyDriver(created), nil
}

func (r *DriverRepository) Update(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	var updated entities.Driver
	err := r.store.mutate(ctx, func() (func(), error) {
		id := derefInt64(driverModify.ID)
		previous, ok := r.store.drivers[id]
		if !ok {
			return nil, entities.ErrDriverNotFound
		}

		updated = previous
		if driverModify.Name != nil && *driverModify.Name != previous.Name {
			if _, taken := r.store.driverByName[*driverModify.Name]; taken {
				return nil, entities.ErrConflict
			}
			updated.Name = *driverModify.Name
		}
		if driverModify.CityID != nil {
			if _, exists := r.store.cities[*driverModify.CityID]; !exists {
				return nil, entities.ErrCityNotFound
			}
			updated.CityID = *driverModify.CityID
		}
		if driverModify.LastStartTimeDelivery != nil {
			last := *driverModify.LastStartTimeDelivery
			updated.LastStartTimeDelivery = &last
		}
		if driverModify.TotalDistance != nil {
			if *driverModify.TotalDistance < 0 {
				return nil, errNegativeDistance
			}
			updated.TotalDistance = *driverModify.TotalDistance
		}
		updated.UpdatedAt = r.store.now()

		r.store.drivers[id] = updated
		delete(r.store.driverByName, previous.Name)
		r.store.driverByName[updated.Name] = id

		return func() {
			r.store.drivers[id] = previous
			delete(r.store.driverByName, updated.Name)
			r.store.driverByName[previous.Name] = id
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return copyDriver(updated), nil
}

func (r *DriverRepository) GetByName(_ context.Context, name string) (*entities.Driver, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.driverByName[name]
	if !ok {
		return nil, entities.ErrDriverNotFound
	}
	return copyDriver(r.store.drivers[id]), nil
}

func (r *DriverRepository) GetAll(context.Context) ([]entities.Driver, error) {
	return r.list(nil), nil
}

func (r *DriverRepository) GetAllByCity(_ context.Context, cityID int64) ([]entities.Driver, error) {
	return r.list(func(d entities.Driver) bool { return d.CityID == cityID }), nil
}

// GetAllByCityForUpdate не берет отдельной блокировки: внутри TxManager.Do
// транзакции и так выполняются по одной.
func (r *DriverRepository) GetAllByCityForUpdate(ctx context.Context, cityID int64) ([]entities.Driver, error) {
	return r.GetAllByCity(ctx, cityID)
}

func (r *DriverRepository) list(keep func(entities.Driver) bool) []entities.Driver {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	drivers := sortedByID(r.store.drivers, keep)
	for i := range drivers {
		drivers[i] = *copyDriver(drivers[i])
	}
	return drivers
}

// copyDriver не дает вызывающему изменить время доставки внутри хранилища через указатель.
func copyDriver(d entities.Driver) *entities.Driver {
	if d.LastStartTimeDelivery != nil {
		last := *d.LastStartTimeDelivery
		d.LastStartTimeDelivery = &last
	}
	return &d
}
