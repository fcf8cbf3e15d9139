package entities

import "errors"

// Ошибки хранилища, общие для всех сервисов. Репозитории возвращают их вместо ошибок драйвера.
var (
	ErrCityNotFound       = errors.New("city not found")
	ErrDriverNotFound     = errors.New("driver not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrConflict           = errors.New("resource already exists")
)
