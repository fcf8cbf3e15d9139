package report

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"walt/internal/entities"
)

type Report struct {
	drivers   DriverRepository
	cities    CityRepository
	txManager TxManager
}

func New(drivers DriverRepository, cities CityRepository, txManager TxManager) *Report {
	return &Report{
		drivers:   drivers,
		cities:    cities,
		txManager: txManager,
	}
}

// GetDriverRankReport возвращает всех водителей по убыванию накопленной дистанции.
func (s *Report) GetDriverRankReport(ctx context.Context) ([]entities.DriverDistance, error) {
	var drivers []entities.Driver
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		drivers, err = s.drivers.GetAll(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get drivers: %w", err)
	}

	return rank(drivers), nil
}

// GetDriverRankReportByCity - то же, что GetDriverRankReport, только по водителям одного города.
func (s *Report) GetDriverRankReportByCity(ctx context.Context, cityName string) ([]entities.DriverDistance, error) {
	cityName = strings.TrimSpace(cityName)
	if cityName == "" {
		return nil, ErrInvalidCityName
	}

	var drivers []entities.Driver
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		city, err := s.cities.GetByName(ctx, cityName)
		if err != nil {
			return fmt.Errorf("get city: %w", err)
		}

		drivers, err = s.drivers.GetAllByCity(ctx, city.ID)
		if err != nil {
			return fmt.Errorf("get drivers by city: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rank(drivers), nil
}

// rank сортирует устойчиво: при равной дистанции сохраняется порядок репозитория (по id).
func rank(drivers []entities.Driver) []entities.DriverDistance {
	result := make([]entities.DriverDistance, 0, len(drivers))
	for _, driver := range drivers {
		result = append(result, entities.DriverDistance{
			DriverID:      driver.ID,
			DriverName:    driver.Name,
			CityID:        driver.CityID,
			TotalDistance: driver.TotalDistance,
		})
	}

	slices.SortStableFunc(result, func(a, b entities.DriverDistance) int {
		return cmp.Compare(b.TotalDistance, a.TotalDistance)
	})
	return result
}
