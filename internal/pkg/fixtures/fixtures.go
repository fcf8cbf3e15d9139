package fixtures

import (
	"context"
	"errors"
	"fmt"

	"walt/internal/entities"
	"walt/internal/service/catalog"
)

const (
	Jerusalem = "Jerusalem"
	TelAviv   = "Tel-Aviv"
	BeerSheva = "Beer-Sheva"
	Haifa     = "Haifa"
)

// Cities в порядке вставки: от него зависят id.
var Cities = []string{Jerusalem, TelAviv, BeerSheva, Haifa}

var Drivers = []catalog.Registration{
	{Name: "Mary", City: TelAviv},
	{Name: "Patricia", City: TelAviv},
	{Name: "Jennifer", City: Haifa},
	{Name: "James", City: BeerSheva},
	{Name: "John", City: BeerSheva},
	{Name: "Robert", City: Jerusalem},
	{Name: "David", City: Jerusalem},
	{Name: "Daniel", City: TelAviv},
	{Name: "Noa", City: Haifa},
	{Name: "Ofri", City: Haifa},
	{Name: "Neta", City: Jerusalem},
}

var Customers = []catalog.Registration{
	{Name: "Beethoven", City: TelAviv, Description: "Ludwig van Beethoven"},
	{Name: "Mozart", City: Jerusalem, Description: "Wolfgang Amadeus Mozart"},
	{Name: "Chopin", City: Haifa, Description: "Frédéric François Chopin"},
	{Name: "Rachmaninoff", City: TelAviv, Description: "Sergei Rachmaninoff"},
	{Name: "Bach", City: TelAviv, Description: "Sebastian Bach. Johann"},
}

var Restaurants = []catalog.Registration{
	{Name: "meat", City: Jerusalem, Description: "All meat restaurant"},
	{Name: "vegan", City: TelAviv, Description: "Only vegan"},
	{Name: "cafe", City: TelAviv, Description: "Coffee shop"},
	{Name: "chinese", City: TelAviv, Description: "chinese restaurant"},
	{Name: "restaurant", City: TelAviv, Description: "mexican restaurant "},
}

// Progress вызывается после каждой созданной записи. Может быть nil.
type Progress func()

// Load заполняет пустое хранилище эталонным набором: 4 города, 11 водителей, 5 клиентов и 5 ресторанов.
// Уже существующие записи пропускаются, поэтому повторный запуск безопасен.
func Load(ctx context.Context, registrar Registrar, progress Progress) error {
	step := func(err error, kind, name string) error {
		if err != nil && !errors.Is(err, entities.ErrConflict) {
			return fmt.Errorf("load %s %q: %w", kind, name, err)
		}
		if progress != nil {
			progress()
		}
		return nil
	}

	for _, name := range Cities {
		_, err := registrar.CreateCity(ctx, entities.CityModify{Name: &name})
		if err := step(err, "city", name); err != nil {
			return err
		}
	}

	for _, driver := range Drivers {
		_, err := registrar.CreateDriver(ctx, driver)
		if err := step(err, "driver", driver.Name); err != nil {
			return err
		}
	}

	for _, customer := range Customers {
		_, err := registrar.CreateCustomer(ctx, customer)
		if err := step(err, "customer", customer.Name); err != nil {
			return err
		}
	}

	for _, restaurant := range Restaurants {
		_, err := registrar.CreateRestaurant(ctx, restaurant)
		if err := step(err, "restaurant", restaurant.Name); err != nil {
			return err
		}
	}

	return nil
}

// Size - число записей, которые создает Load.
func Size() int {
	return len(Cities) + len(Drivers) + len(Customers) + len(Restaurants)
}
