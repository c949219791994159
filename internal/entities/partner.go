package entities

type Partner struct {
	ID             string
	AssignedOrders []string // в порядке назначения
}
