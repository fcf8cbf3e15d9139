package delivery

import "walt/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}
	return &entities.Delivery{
		ID:           d.ID,
		DriverID:     d.DriverID,
		RestaurantID: d.RestaurantID,
		CustomerID:   d.CustomerID,
		DeliveryTime: d.DeliveryTime.UTC(),
		Distance:     d.Distance,
		CreatedAt:    d.CreatedAt,
	}
}

func FromDomainModify(d *entities.DeliveryModify) *DeliveryModifyDB {
	if d == nil {
		return nil
	}
	deliveryModifyDB := &DeliveryModifyDB{}

	if d.ID != nil {
		deliveryModifyDB.ID = d.ID
	}
	if d.DriverID != nil {
		deliveryModifyDB.DriverID = d.DriverID
	}
	if d.RestaurantID != nil {
		deliveryModifyDB.RestaurantID = d.RestaurantID
	}
	if d.CustomerID != nil {
		deliveryModifyDB.CustomerID = d.CustomerID
	}
	if d.DeliveryTime != nil {
		deliveryModifyDB.DeliveryTime = d.DeliveryTime
	}
	if d.Distance != nil {
		deliveryModifyDB.Distance = d.Distance
	}

	return deliveryModifyDB
}
