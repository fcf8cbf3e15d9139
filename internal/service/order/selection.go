package order

import (
	"time"

	"walt/internal/entities"
)

// pickDriver выбирает свободного на deliveryTime водителя с наименьшим пробегом.
// При равенстве остается первый встреченный.
func pickDriver(drivers []entities.Driver, deliveryTime time.Time) (entities.Driver, bool) {
	var (
		chosen entities.Driver
		found  bool
	)
	for _, driver := range drivers {
		if !driver.AvailableAt(deliveryTime) {
			continue
		}
		if !found || driver.TotalDistance < chosen.TotalDistance {
			chosen = driver
			found = true
		}
	}
	return chosen, found
}
