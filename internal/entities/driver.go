package entities

import "time"

// DriverBusyWindow - сколько водитель занят после начала доставки.
const DriverBusyWindow = time.Hour

type Driver struct {
	ID                    int64
	Name                  string
	CityID                int64
	LastStartTimeDelivery *time.Time
	TotalDistance         int64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// AvailableAt сравнивает только с deliveryTime, а не с текущим временем:
// доставки можно планировать и в прошлое, и в будущее.
// Водитель свободен, если доставок не было или час после последней истек строго до deliveryTime.
func (d Driver) AvailableAt(deliveryTime time.Time) bool {
	if d.LastStartTimeDelivery == nil {
		return true
	}
	return d.LastStartTimeDelivery.Add(DriverBusyWindow).Before(deliveryTime)
}

type DriverModify struct {
	ID                    *int64
	Name                  *string
	CityID                *int64
	LastStartTimeDelivery *time.Time
	TotalDistance         *int64
}

// DriverProfile - карточка водителя для API: текущее состояние и число выполненных доставок.
type DriverProfile struct {
	Driver          Driver
	CityName        string
	DeliveriesCount int64
}
