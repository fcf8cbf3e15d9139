package driver

import (
	"walt/internal/entities"
)

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}

	driver := &entities.Driver{
		ID:            d.ID,
		Name:          d.Name,
		CityID:        d.CityID,
		TotalDistance: d.TotalDistance,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	if d.LastStartTimeDelivery != nil {
		last := d.LastStartTimeDelivery.UTC()
		driver.LastStartTimeDelivery = &last
	}
	return driver
}

func FromDomainModify(driverModify *entities.DriverModify) *DriverModifyDB {
	if driverModify == nil {
		return nil
	}
	driverDB := &DriverModifyDB{}

	if driverModify.ID != nil {
		driverDB.ID = driverModify.ID
	}
	if driverModify.Name != nil {
		driverDB.Name = driverModify.Name
	}
	if driverModify.CityID != nil {
		driverDB.CityID = driverModify.CityID
	}
	if driverModify.LastStartTimeDelivery != nil {
		driverDB.LastStartTimeDelivery = driverModify.LastStartTimeDelivery
	}
	if driverModify.TotalDistance != nil {
		driverDB.TotalDistance = driverModify.TotalDistance
	}

	return driverDB
}

func ToDomainList(driversDB []DriverDB) []entities.Driver {
	if len(driversDB) == 0 {
		return []entities.Driver{}
	}

	result := make([]entities.Driver, len(driversDB))
	for i, driverDB := range driversDB {
		result[i] = *ToDomain(&driverDB)
	}
	return result
}
