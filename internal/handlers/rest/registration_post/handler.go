package registration_post

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"walt/internal/entities"
	"walt/internal/generated/dto"
	"walt/internal/service/catalog"
	"walt/pkg/logger"
)

type registerFunc func(ctx context.Context, registration catalog.Registration) (any, error)

// Handler регистрирует водителя, клиента или ресторан. Тело запроса у всех трех одинаковое.
type Handler struct {
	log      handlerLogger
	register registerFunc
}

func newHandler(log handlerLogger, register registerFunc) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		register: register,
	}
}

func NewDriver(log handlerLogger, service Service) *Handler {
	return newHandler(log, func(ctx context.Context, registration catalog.Registration) (any, error) {
		driver, err := service.CreateDriver(ctx, registration)
		if err != nil {
			return nil, err
		}
		return dto.Driver{
			ID:                    driver.ID,
			Name:                  driver.Name,
			CityID:                driver.CityID,
			TotalDistance:         driver.TotalDistance,
			LastStartTimeDelivery: driver.LastStartTimeDelivery,
		}, nil
	})
}

func NewCustomer(log handlerLogger, service Service) *Handler {
	return newHandler(log, func(ctx context.Context, registration catalog.Registration) (any, error) {
		customer, err := service.CreateCustomer(ctx, registration)
		if err != nil {
			return nil, err
		}
		return dto.Customer{
			ID:          customer.ID,
			Name:        customer.Name,
			CityID:      customer.CityID,
			Description: customer.Description,
		}, nil
	})
}

func NewRestaurant(log handlerLogger, service Service) *Handler {
	return newHandler(log, func(ctx context.Context, registration catalog.Registration) (any, error) {
		restaurant, err := service.CreateRestaurant(ctx, registration)
		if err != nil {
			return nil, err
		}
		return dto.Restaurant{
			ID:          restaurant.ID,
			Name:        restaurant.Name,
			CityID:      restaurant.CityID,
			Description: restaurant.Description,
		}, nil
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var registrationDTO dto.Registration
	err := json.NewDecoder(r.Body).Decode(&registrationDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	registration := catalog.Registration{
		Name: registrationDTO.Name,
		City: registrationDTO.City,
	}
	if registrationDTO.Description != nil {
		registration.Description = *registrationDTO.Description
	}

	response, err := h.register(r.Context(), registration)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrMissingRequiredFields),
			errors.Is(err, catalog.ErrInvalidName),
			errors.Is(err, catalog.ErrInvalidCityName):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, entities.ErrCityNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, entities.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
