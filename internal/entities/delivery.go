package entities

import "time"

type Delivery struct {
	ID           int64
	DriverID     int64
	RestaurantID int64
	CustomerID   int64
	DeliveryTime time.Time
	Distance     int64
	CreatedAt    time.Time
}

type DeliveryModify struct {
	ID           *int64
	DriverID     *int64
	RestaurantID *int64
	CustomerID   *int64
	DeliveryTime *time.Time
	Distance     *int64
}

// DeliveryAssignment - результат успешного заказа: доставка и все записи, на которые она ссылается.
// Driver содержит состояние уже после назначения.
type DeliveryAssignment struct {
	Delivery   Delivery
	Driver     Driver
	Customer   Customer
	Restaurant Restaurant
}

type DriverDistance struct {
	DriverID      int64
	DriverName    string
	CityID        int64
	TotalDistance int64
}
