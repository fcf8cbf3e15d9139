package delivery

import "time"

type DeliveryDB struct {
	ID           int64
	DriverID     int64
	RestaurantID int64
	CustomerID   int64
	DeliveryTime time.Time
	Distance     int64
	CreatedAt    time.Time
}

type DeliveryModifyDB struct {
	ID           *int64
	DriverID     *int64
	RestaurantID *int64
	CustomerID   *int64
	DeliveryTime *time.Time
	Distance     *int64
}
