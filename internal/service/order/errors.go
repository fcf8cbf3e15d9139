package order

import "errors"

var (
	ErrInvalidName         = errors.New("invalid name")
	ErrInvalidDeliveryTime = errors.New("invalid delivery time")

	ErrCustomerNotRegistered = errors.New("customer is not registered")
	ErrRestaurantNotFound    = errors.New("restaurant not found")
	ErrCrossCityOrder        = errors.New("restaurant is outside of the customer city")
	ErrNoAvailableDriver     = errors.New("no available driver in the city")
)
