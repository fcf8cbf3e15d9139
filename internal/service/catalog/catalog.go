package catalog

import (
	"context"
	"fmt"

	"walt/internal/entities"
)

// Registration - данные для регистрации водителя, клиента или ресторана. Город задается именем.
type Registration struct {
	Name        string
	City        string
	Description string
}

type Catalog struct {
	cities      CityRepository
	drivers     DriverRepository
	customers   CustomerRepository
	restaurants RestaurantRepository
	deliveries  DeliveryRepository
	txManager   TxManager
}

func New(
	cities CityRepository,
	drivers DriverRepository,
	customers CustomerRepository,
	restaurants RestaurantRepository,
	deliveries DeliveryRepository,
	txManager TxManager,
) *Catalog {
	return &Catalog{
		cities:      cities,
		drivers:     drivers,
		customers:   customers,
		restaurants: restaurants,
		deliveries:  deliveries,
		txManager:   txManager,
	}
}

func (s *Catalog) CreateCity(ctx context.Context, cityModify entities.CityModify) (*entities.City, error) {
	if cityModify.Name == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidName(*cityModify.Name) {
		return nil, ErrInvalidCityName
	}

	name := normalizeName(*cityModify.Name)
	city, err := s.cities.Create(ctx, entities.CityModify{Name: &name})
	if err != nil {
		return nil, fmt.Errorf("create city: %w", err)
	}
	return city, nil
}

func (s *Catalog) GetCities(ctx context.Context) ([]entities.City, error) {
	cities, err := s.cities.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get cities: %w", err)
	}
	return cities, nil
}

func (s *Catalog) CreateDriver(ctx context.Context, registration Registration) (*entities.Driver, error) {
	name, cityName, err := validateRegistration(registration)
	if err != nil {
		return nil, err
	}

	var driver *entities.Driver
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		city, err := s.cities.GetByName(ctx, cityName)
		if err != nil {
			return fmt.Errorf("get city: %w", err)
		}

		driver, err = s.drivers.Create(ctx, entities.DriverModify{
			Name:   &name,
			CityID: &city.ID,
		})
		if err != nil {
			return fmt.Errorf("create driver: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return driver, nil
}

func (s *Catalog) CreateCustomer(ctx context.Context, registration Registration) (*entities.Customer, error) {
	name, cityName, err := validateRegistration(registration)
	if err != nil {
		return nil, err
	}

	var customer *entities.Customer
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		city, err := s.cities.GetByName(ctx, cityName)
		if err != nil {
			return fmt.Errorf("get city: %w", err)
		}

		customer, err = s.customers.Create(ctx, entities.CustomerModify{
			Name:        &name,
			CityID:      &city.ID,
			Description: &registration.Description,
		})
		if err != nil {
			return fmt.Errorf("create customer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return customer, nil
}

func (s *Catalog) CreateRestaurant(ctx context.Context, registration Registration) (*entities.Restaurant, error) {
	name, cityName, err := validateRegistration(registration)
	if err != nil {
		return nil, err
	}

	var restaurant *entities.Restaurant
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		city, err := s.cities.GetByName(ctx, cityName)
		if err != nil {
			return fmt.Errorf("get city: %w", err)
		}

		restaurant, err = s.restaurants.Create(ctx, entities.RestaurantModify{
			Name:        &name,
			CityID:      &city.ID,
			Description: &registration.Description,
		})
		if err != nil {
			return fmt.Errorf("create restaurant: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return restaurant, nil
}

// GetDriver собирает карточку водителя: сам водитель, имя города и число его доставок.
func (s *Catalog) GetDriver(ctx context.Context, name string) (*entities.DriverProfile, error) {
	if !isValidName(name) {
		return nil, ErrInvalidName
	}

	driver, err := s.drivers.GetByName(ctx, normalizeName(name))
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	profile := &entities.DriverProfile{Driver: *driver}

	profile.DeliveriesCount, err = s.deliveries.CountByDriverID(ctx, driver.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count driver deliveries: %w", err)
	}

	city, err := s.cities.GetByID(ctx, driver.CityID)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver city: %w", err)
	}
	profile.CityName = city.Name

	return profile, nil
}

func validateRegistration(registration Registration) (name, cityName string, err error) {
	if registration.Name == "" || registration.City == "" {
		return "", "", ErrMissingRequiredFields
	}
	if !isValidName(registration.Name) {
		return "", "", ErrInvalidName
	}
	if !isValidName(registration.City) {
		return "", "", ErrInvalidCityName
	}
	return normalizeName(registration.Name), normalizeName(registration.City), nil
}
