package driver_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	profile, err := h.service.GetDriver(r.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, catalog.ErrInvalidName):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	profileDTO := dto.DriverProfile{
		Driver: dto.Driver{
			ID:                    profile.Driver.ID,
			Name:                  profile.Driver.Name,
			CityID:                profile.Driver.CityID,
			TotalDistance:         profile.Driver.TotalDistance,
			LastStartTimeDelivery: profile.Driver.LastStartTimeDelivery,
		},
		City:            profile.CityName,
		DeliveriesCount: profile.DeliveriesCount,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(profileDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
