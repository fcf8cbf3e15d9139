package report

import "errors"

var ErrInvalidCityName = errors.New("invalid city name")
