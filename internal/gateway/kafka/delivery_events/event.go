package delivery_events

import "time"

const EventTypeDeliveryCreated = "delivery.created"

type deliveryCreatedEvent struct {
	EventID      string    `json:"event_id"`
	DeliveryID   int64     `json:"delivery_id"`
	Driver       string    `json:"driver"`
	Customer     string    `json:"customer"`
	Restaurant   string    `json:"restaurant"`
	CityID       int64     `json:"city_id"`
	DeliveryTime time.Time `json:"delivery_time"`
	Distance     int64     `json:"distance"`
}
