package dto

// AppointmentViewDTO is the joined projection used by every appointment
// listing: human-readable names instead of foreign keys.
type AppointmentViewDTO struct {
	ID           uint   `json:"id"`
	CustomerID   uint   `json:"customerId"`
	CustomerName string `json:"customerName,omitempty"`
	BarberID     uint   `json:"barberId"`
	BarberName   string `json:"barberName"`
	ServiceName  string `json:"serviceName"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Status       string `json:"status"`
}
