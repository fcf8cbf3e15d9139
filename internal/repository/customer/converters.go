package customer

import "walt/internal/entities"

func ToDomain(c *CustomerDB) *entities.Customer {
	if c == nil {
		return nil
	}
	return &entities.Customer{
		ID:          c.ID,
		Name:        c.Name,
		CityID:      c.CityID,
		Description: c.Description,
	}
}

func FromDomainModify(c *entities.CustomerModify) *CustomerModifyDB {
	if c == nil {
		return nil
	}
	customerDB := &CustomerModifyDB{
		ID:     c.ID,
		Name:   c.Name,
		CityID: c.CityID,
	}

	// description необязательное, в базе NOT NULL DEFAULT ''
	description := ""
	if c.Description != nil {
		description = *c.Description
	}
	customerDB.Description = &description

	return customerDB
}
