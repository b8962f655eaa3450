package store

import "time"

// Order statuses. Nothing in the service transitions an order past
// pending yet; the remaining labels exist for the storefront UI.
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusShipped   = "shipped"
	StatusCancelled = "cancelled"
)

// User is a storefront account row. PasswordHash is a bcrypt hash and
// must never be serialized to clients; handlers build their own
// projection.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Order is a persisted purchase. OrderData holds the client's cart
// document as serialized JSON; the server stores it opaquely and never
// inspects its contents.
type Order struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	OrderData  string    `json:"orderData"`
	TotalPrice float64   `json:"totalPrice"`
	TotalItems int       `json:"totalItems"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}
