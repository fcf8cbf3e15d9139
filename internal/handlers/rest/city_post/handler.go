package city_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"walt/internal/entities"
	"walt/internal/generated/dto"
	"walt/internal/service/catalog"
	"walt/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var cityCreateDTO dto.CityCreate
	err := json.NewDecoder(r.Body).Decode(&cityCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	city, err := h.service.CreateCity(r.Context(), entities.CityModify{
		Name: &cityCreateDTO.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrMissingRequiredFields),
			errors.Is(err, catalog.ErrInvalidCityName):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, entities.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.City{
		ID:   city.ID,
		Name: city.Name,
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
