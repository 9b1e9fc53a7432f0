package models

import "time"

// User roles.
const (
	RoleConsumer = "consumer"
	RoleSupplier = "supplier"
)

// User is a marketplace member. Coordinates are optional.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Location  string    `json:"location"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
