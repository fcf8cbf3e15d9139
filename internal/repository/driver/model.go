package driver

import "time"

type DriverDB struct {
	ID                    int64
	Name                  string
	CityID                int64
	LastStartTimeDelivery *time.Time
	TotalDistance         int64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type DriverModifyDB struct {
	ID                    *int64
	Name                  *string
	CityID                *int64
	LastStartTimeDelivery *time.Time
	TotalDistance         *int64
}
