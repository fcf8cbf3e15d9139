package city

import "walt/internal/entities"

func ToDomain(c *CityDB) *entities.City {
	if c == nil {
		return nil
	}
	return &entities.City{
		ID:   c.ID,
		Name: c.Name,
	}
}

func FromDomainModify(c *entities.CityModify) *CityModifyDB {
	if c == nil {
		return nil
	}
	return &CityModifyDB{
		ID:   c.ID,
		Name: c.Name,
	}
}

func ToDomainList(citiesDB []CityDB) []entities.City {
	if len(citiesDB) == 0 {
		return []entities.City{}
	}

	result := make([]entities.City, len(citiesDB))
	for i, cityDB := range citiesDB {
		result[i] = *ToDomain(&cityDB)
	}
	return result
}
