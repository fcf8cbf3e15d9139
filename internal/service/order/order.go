package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"walt/internal/entities"
	"walt/pkg/logger"
)

type Service struct {
	log         serviceLogger
	customers   CustomerRepository
	restaurants RestaurantRepository
	drivers     DriverRepository
	deliveries  DeliveryRepository
	distance    DistanceCalculator
	publisher   EventPublisher
	txManager   TxManager
}

func New(
	log serviceLogger,
	customers CustomerRepository,
	restaurants RestaurantRepository,
	drivers DriverRepository,
	deliveries DeliveryRepository,
	distance DistanceCalculator,
	publisher EventPublisher,
	txManager TxManager,
) *Service {
	return &Service{
		log:         log.With(logger.NewField("service", "order")),
		customers:   customers,
		restaurants: restaurants,
		drivers:     drivers,
		deliveries:  deliveries,
		distance:    distance,
		publisher:   publisher,
		txManager:   txManager,
	}
}

// CreateOrderByNames оформляет заказ по именам клиента и ресторана.
func (s *Service) CreateOrderByNames(ctx context.Context, customerName, restaurantName string, deliveryTime time.Time) (*entities.DeliveryAssignment, error) {
	return s.CreateOrderAndAssignDriver(ctx, entities.Customer{Name: customerName}, entities.Restaurant{Name: restaurantName}, deliveryTime)
}

// CreateOrderAndAssignDriver назначает заказу свободного водителя из города клиента.
// Бизнес-отказы (клиент не зарегистрирован, ресторан в другом городе, нет свободных водителей)
// логируются и возвращаются как sentinel ошибки без доставки.
// Клиент и ресторан перечитываются из хранилища по имени, город и id вызывающего не используются.
func (s *Service) CreateOrderAndAssignDriver(
	ctx context.Context,
	customer entities.Customer,
	restaurant entities.Restaurant,
	deliveryTime time.Time,
) (*entities.DeliveryAssignment, error) {
	if strings.TrimSpace(customer.Name) == "" || strings.TrimSpace(restaurant.Name) == "" {
		return nil, ErrInvalidName
	}
	if deliveryTime.IsZero() {
		return nil, ErrInvalidDeliveryTime
	}
	deliveryTime = deliveryTime.UTC()

	orderLog := s.log.With(
		logger.NewField("customer", customer.Name),
		logger.NewField("restaurant", restaurant.Name),
		logger.NewField("delivery_time", deliveryTime),
	)

	registered, err := s.customers.GetByName(ctx, customer.Name)
	if err != nil {
		if errors.Is(err, entities.ErrCustomerNotFound) {
			orderLog.Error("unregistered customer is trying to place an order")
			OrdersTotal.WithLabelValues(resultCustomerNotRegistered).Inc()
			return nil, ErrCustomerNotRegistered
		}
		OrdersTotal.WithLabelValues(resultError).Inc()
		return nil, fmt.Errorf("get customer: %w", err)
	}

	stored, err := s.restaurants.GetByName(ctx, restaurant.Name)
	if err != nil {
		if errors.Is(err, entities.ErrRestaurantNotFound) {
			orderLog.Error("order for an unknown restaurant")
			OrdersTotal.WithLabelValues(resultRestaurantNotFound).Inc()
			return nil, ErrRestaurantNotFound
		}
		OrdersTotal.WithLabelValues(resultError).Inc()
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	restaurant = *stored

	if registered.CityID != restaurant.CityID {
		orderLog.Error("customer ordered from a restaurant outside of delivery range",
			logger.NewField("customer_city", registered.CityID),
			logger.NewField("restaurant_city", restaurant.CityID),
		)
		OrdersTotal.WithLabelValues(resultCrossCity).Inc()
		return nil, ErrCrossCityOrder
	}

	var assignment entities.DeliveryAssignment
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		drivers, err := s.drivers.GetAllByCityForUpdate(ctx, registered.CityID)
		if err != nil {
			return fmt.Errorf("get drivers by city: %w", err)
		}

		driver, ok := pickDriver(drivers, deliveryTime)
		if !ok {
			return ErrNoAvailableDriver
		}

		distance := s.distance.Distance(restaurant, *registered)
		if distance < 0 {
			return fmt.Errorf("distance calculator returned negative distance %d", distance)
		}

		delivery, err := s.deliveries.Create(ctx, entities.DeliveryModify{
			DriverID:     &driver.ID,
			RestaurantID: &restaurant.ID,
			CustomerID:   &registered.ID,
			DeliveryTime: &deliveryTime,
			Distance:     &distance,
		})
		if err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}

		totalDistance := driver.TotalDistance + distance
		updatedDriver, err := s.drivers.Update(ctx, entities.DriverModify{
			ID:                    &driver.ID,
			LastStartTimeDelivery: &deliveryTime,
			TotalDistance:         &totalDistance,
		})
		if err != nil {
			return fmt.Errorf("update driver: %w", err)
		}

		assignment = entities.DeliveryAssignment{
			Delivery:   *delivery,
			Driver:     *updatedDriver,
			Customer:   *registered,
			Restaurant: restaurant,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNoAvailableDriver) {
			orderLog.Error("no driver available in the city of delivery",
				logger.NewField("city", registered.CityID),
			)
			OrdersTotal.WithLabelValues(resultNoDriver).Inc()
			return nil, ErrNoAvailableDriver
		}
		OrdersTotal.WithLabelValues(resultError).Inc()
		return nil, err
	}

	OrdersTotal.WithLabelValues(resultAssigned).Inc()
	DeliveryDistance.Observe(float64(assignment.Delivery.Distance))

	orderLog.Info("driver assigned",
		logger.NewField("driver", assignment.Driver.Name),
		logger.NewField("delivery_id", assignment.Delivery.ID),
		logger.NewField("distance", assignment.Delivery.Distance),
	)

	// событие уходит после коммита, его потеря не отменяет доставку
	if err := s.publisher.PublishDeliveryCreated(ctx, assignment); err != nil {
		EventPublishFailuresTotal.Inc()
		orderLog.Warn("failed to publish delivery.created",
			logger.NewField("delivery_id", assignment.Delivery.ID),
			logger.NewField("error", err),
		)
	}

	return &assignment, nil
}
