package delivery_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"walt/internal/entities"
	"walt/internal/generated/dto"
	"walt/internal/service/order"
	"walt/pkg/logger"
)

var errInvalidRequestBody = errors.New("invalid request body")

type Handler struct {
	log     handlerLogger
	service Service
	now     func() time.Time
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		now:     time.Now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var deliveryCreateDTO dto.DeliveryCreate
	err := json.NewDecoder(r.Body).Decode(&deliveryCreateDTO)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	// Без времени доставка оформляется на текущий момент.
	deliveryTime := h.now()
	if deliveryCreateDTO.DeliveryTime != nil {
		deliveryTime = *deliveryCreateDTO.DeliveryTime
	}

	assignment, err := h.service.CreateOrderByNames(
		r.Context(),
		deliveryCreateDTO.Customer,
		deliveryCreateDTO.Restaurant,
		deliveryTime,
	)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidName),
			errors.Is(err, order.ErrInvalidDeliveryTime):
			h.writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, order.ErrCustomerNotRegistered),
			errors.Is(err, order.ErrRestaurantNotFound):
			h.writeError(w, http.StatusNotFound, err)
		case errors.Is(err, order.ErrNoAvailableDriver):
			h.writeError(w, http.StatusConflict, err)
		case errors.Is(err, order.ErrCrossCityOrder):
			h.writeError(w, http.StatusUnprocessableEntity, err)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create delivery")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, http.StatusCreated, toDeliveryResponse(assignment))
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, dto.Error{Message: err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toDeliveryResponse(assignment *entities.DeliveryAssignment) dto.DeliveryResponse {
	return dto.DeliveryResponse{
		ID:           assignment.Delivery.ID,
		DeliveryTime: assignment.Delivery.DeliveryTime,
		Distance:     assignment.Delivery.Distance,
		Driver: dto.Driver{
			ID:                    assignment.Driver.ID,
			Name:                  assignment.Driver.Name,
			CityID:                assignment.Driver.CityID,
			TotalDistance:         assignment.Driver.TotalDistance,
			LastStartTimeDelivery: assignment.Driver.LastStartTimeDelivery,
		},
		Customer: dto.Customer{
			ID:          assignment.Customer.ID,
			Name:        assignment.Customer.Name,
			CityID:      assignment.Customer.CityID,
			Description: assignment.Customer.Description,
		},
		Restaurant: dto.Restaurant{
			ID:          assignment.Restaurant.ID,
			Name:        assignment.Restaurant.Name,
			CityID:      assignment.Restaurant.CityID,
			Description: assignment.Restaurant.Description,
		},
	}
}
