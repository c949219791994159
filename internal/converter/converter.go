package converter

import (
	"assignment-service/internal/entities"
	"assignment-service/internal/generated/dto"
)

// OrderToEntity переносит неизвестные схеме поля заказа в Attributes.
func OrderToEntity(o dto.Order) entities.Order {
	return entities.Order{
		ID:           o.OrderId,
		DeliveryTime: o.DeliveryTime,
		Attributes:   o.AdditionalProperties,
	}
}

func OrderFromEntity(o entities.Order) dto.Order {
	return dto.Order{
		OrderId:              o.ID,
		DeliveryTime:         o.DeliveryTime,
		AdditionalProperties: o.Attributes,
	}
}

func OrdersFromEntities(orders []entities.Order) []dto.Order {
	res := make([]dto.Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderFromEntity(o))
	}
	return res
}

func PartnerFromEntity(p entities.Partner) dto.Partner {
	assigned := p.AssignedOrders
	if assigned == nil {
		assigned = []string{}
	}
	return dto.Partner{
		PartnerId:      p.ID,
		AssignedOrders: assigned,
	}
}
