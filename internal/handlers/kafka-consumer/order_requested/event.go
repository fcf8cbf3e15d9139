package order_requested

import "time"

type requestedEvent struct {
	Customer     string    `json:"customer"`
	Restaurant   string    `json:"restaurant"`
	DeliveryTime time.Time `json:"delivery_time"`
}
