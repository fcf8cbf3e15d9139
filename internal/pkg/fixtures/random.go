package fixtures

import (
	"fmt"

	"github.com/jaswdr/faker"
	"walt/internal/service/catalog"
)

// RandomDrivers генерирует count водителей со случайными именами в городах из cities.
// Номер в имени гарантирует уникальность: faker повторяет имена.
func RandomDrivers(fake faker.Faker, cities []string, count int) []catalog.Registration {
	if len(cities) == 0 || count <= 0 {
		return nil
	}

	drivers := make([]catalog.Registration, 0, count)
	for i := range count {
		drivers = append(drivers, catalog.Registration{
			Name: fmt.Sprintf("%s %s #%d", fake.Person().FirstName(), fake.Person().LastName(), i+1),
			City: cities[fake.IntBetween(0, len(cities)-1)],
		})
	}
	return drivers
}

// RandomCustomers - то же для клиентов, описание берется из faker.
func RandomCustomers(fake faker.Faker, cities []string, count int) []catalog.Registration {
	if len(cities) == 0 || count <= 0 {
		return nil
	}

	customers := make([]catalog.Registration, 0, count)
	for i := range count {
		customers = append(customers, catalog.Registration{
			Name:        fmt.Sprintf("%s #%d", fake.Person().Name(), i+1),
			City:        cities[fake.IntBetween(0, len(cities)-1)],
			Description: fake.Lorem().Sentence(4),
		})
	}
	return customers
}
