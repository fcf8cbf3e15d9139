package drivers_rank_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"walt/internal/entities"
	"walt/internal/generated/dto"
	"walt/internal/service/report"
	"walt/pkg/logger"
)

// Handler обслуживает /drivers/rank и /drivers/rank/{city}.
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
	var (
		ranked []entities.DriverDistance
		err    error
	)
	if cityName, ok := mux.Vars(r)["city"]; ok {
		ranked, err = h.service.GetDriverRankReportByCity(r.Context(), cityName)
	} else {
		ranked, err = h.service.GetDriverRankReport(r.Context())
	}
	if err != nil {
		switch {
		case errors.Is(err, report.ErrInvalidCityName):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, entities.ErrCityNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("get driver rank report")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	rows := make([]dto.DriverDistance, 0, len(ranked))
	for _, row := range ranked {
		rows = append(rows, dto.DriverDistance{
			DriverID:      row.DriverID,
			DriverName:    row.DriverName,
			CityID:        row.CityID,
			TotalDistance: row.TotalDistance,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(rows)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
