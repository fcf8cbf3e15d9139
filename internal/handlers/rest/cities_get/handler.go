package cities_get

import (
	"encoding/json"
	"net/http"

	"walt/internal/generated/dto"
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
	cities, err := h.service.GetCities(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	citiesDTO := make([]dto.City, 0, len(cities))
	for _, city := range cities {
		citiesDTO = append(citiesDTO, dto.City{
			ID:   city.ID,
			Name: city.Name,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(citiesDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
