package entity

import "time"

// Customer representa un cliente registrado de la panadería.
type Customer struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
}
