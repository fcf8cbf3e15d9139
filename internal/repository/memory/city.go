package memory

import (
	"context"

	"walt/internal/entities"
)

type CityRepository struct {
	store *Store
}

func (r *CityRepository) Create(ctx context.Context, cityModify entities.CityModify) (*entities.City, error) {
	var created entities.City
	err := r.store.mutate(ctx, func() (func(), error) {
		name := derefString(cityModify.Name)
		if _, ok := r.store.cityByName[name]; ok {
			return nil, entities.ErrConflict
		}

		created = entities.City{ID: r.store.nextID(), Name: name}
		r.store.cities[created.ID] = created
		r.store.cityByName[name] = created.ID

		return func() {
			delete(r.store.cities, created.ID)
			delete(r.store.cityByName, name)
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *CityRepository) GetByName(_ context.Context, name string) (*entities.City, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.cityByName[name]
	if !ok {
		return nil, entities.ErrCityNotFound
	}
	city := r.store.cities[id]
	return &city, nil
}

func (r *CityRepository) GetByID(_ context.Context, id int64) (*entities.City, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	city, ok := r.store.cities[id]
	if !ok {
		return nil, entities.ErrCityNotFound
	}
	return &city, nil
}

func (r *CityRepository) GetAll(context.Context) ([]entities.City, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return sortedByID(r.store.cities, nil), nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt64(i *int64) int64 {
	if i == nil {
		return 0
	}
	return *i
}
