package memory

import (
	"context"

	"walt/internal/entities"
)

type CustomerRepository struct {
	store *Store
}

func (r *CustomerRepository) Create(ctx context.Context, customerModify entities.CustomerModify) (*entities.Customer, error) {
	var created entities.Customer
	err := r.store.mutate(ctx, func() (func(), error) {
		name := derefString(customerModify.Name)
		if _, ok := r.store.customerByName[name]; ok {
			return nil, entities.ErrConflict
		}
		cityID := derefInt64(customerModify.CityID)
		if _, ok := r.store.cities[cityID]; !ok {
			return nil, entities.ErrCityNotFound
		}

		created = entities.Customer{
			ID:          r.store.nextID(),
			Name:        name,
			CityID:      cityID,
			Description: derefString(customerModify.Description),
		}
		r.store.customers[created.ID] = created
		r.store.customerByName[name] = created.ID

		return func() {
			delete(r.store.customers, created.ID)
			delete(r.store.customerByName, name)
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *CustomerRepository) GetByName(_ context.Context, name string) (*entities.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.customerByName[name]
	if !ok {
		return nil, entities.ErrCustomerNotFound
	}
	customer := r.store.customers[id]
	return &customer, nil
}
