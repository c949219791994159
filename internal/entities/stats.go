package entities

type RegistryStats struct {
	Orders     int
	Partners   int
	Assigned   int
	Unassigned int
}
