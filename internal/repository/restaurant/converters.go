package restaurant

import "walt/internal/entities"

func ToDomain(c *RestaurantDB) *entities.Restaurant {
	if c == nil {
		return nil
	}
	return &entities.Restaurant{
		ID:          c.ID,
		Name:        c.Name,
		CityID:      c.CityID,
		Description: c.Description,
	}
}

func FromDomainModify(c *entities.RestaurantModify) *RestaurantModifyDB {
	if c == nil {
		return nil
	}
	restaurantDB := &RestaurantModifyDB{
		ID:     c.ID,
		Name:   c.Name,
		CityID: c.CityID,
	}

	// description необязательное, в базе NOT NULL DEFAULT ''
	description := ""
	if c.Description != nil {
		description = *c.Description
	}
	restaurantDB.Description = &description

	return restaurantDB
}
