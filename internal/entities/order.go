package entities

import "encoding/json"

type Order struct {
	ID           string
	DeliveryTime *string // ожидается HH:MM, но хранится как пришло
	Attributes   map[string]json.RawMessage
}

// Clone возвращает копию, не разделяющую память с оригиналом.
func (o Order) Clone() Order {
	clone := Order{ID: o.ID}
	if o.DeliveryTime != nil {
		deliveryTime := *o.DeliveryTime
		clone.DeliveryTime = &deliveryTime
	}
	if o.Attributes != nil {
		clone.Attributes = make(map[string]json.RawMessage, len(o.Attributes))
		for k, v := range o.Attributes {
			clone.Attributes[k] = append(json.RawMessage(nil), v...)
		}
	}
	return clone
}
