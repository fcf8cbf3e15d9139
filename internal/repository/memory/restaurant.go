package memory

import (
	"context"

	"walt/internal/entities"
)

type RestaurantRepository struct {
	store *Store
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurantModify entities.RestaurantModify) (*entities.Restaurant, error) {
	var created entities.Restaurant
	err := r.store.mutate(ctx, func() (func(), error) {
		name := derefString(restaurantModify.Name)
		if _, ok := r.store.restaurantByName[name]; ok {
			return nil, entities.ErrConflict
		}
		cityID := derefInt64(restaurantModify.CityID)
		if _, ok := r.store.cities[cityID]; !ok {
			return nil, entities.ErrCityNotFound
		}

		created = entities.Restaurant{
			ID:          r.store.nextID(),
			Name:        name,
			CityID:      cityID,
			Description: derefString(restaurantModify.Description),
		}
		r.store.restaurants[created.ID] = created
		r.store.restaurantByName[name] = created.ID

		return func() {
			delete(r.store.restaurants, created.ID)
			delete(r.store.restaurantByName, name)
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *RestaurantRepository) GetByName(_ context.Context, name string) (*entities.Restaurant, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.restaurantByName[name]
	if !ok {
		return nil, entities.ErrRestaurantNotFound
	}
	restaurant := r.store.restaurants[id]
	return &restaurant, nil
}
