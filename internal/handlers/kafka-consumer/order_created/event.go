package order_created

import (
	"encoding/json"

	"assignment-service/internal/entities"
)

// orderCreatedEvent - сообщение топика новых заказов.
type orderCreatedEvent struct {
	OrderID      string                     `json:"order_id"`
	DeliveryTime *string                    `json:"delivery_time,omitempty"`
	Attributes   map[string]json.RawMessage `json:"attributes,omitempty"`
}

func (e orderCreatedEvent) toEntity() entities.Order {
	return entities.Order{
		ID:           e.OrderID,
		DeliveryTime: e.DeliveryTime,
		Attributes:   e.Attributes,
	}
}
