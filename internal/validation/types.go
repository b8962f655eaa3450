package validation

import "encoding/json"

// RegisterRequest is the payload for POST /api/register.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// LoginRequest is the payload for POST /api/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is the payload for PUT /api/profile.
// The caller-supplied userId is trusted as-is; there is no check that
// it matches the bearer of the request's token. See DESIGN.md.
type UpdateProfileRequest struct {
	UserID    int64  `json:"userId" validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// SaveOrderRequest is the payload for POST /api/orders. OrderData is
// kept opaque; the server stores whatever document the client sent.
type SaveOrderRequest struct {
	UserID     int64           `json:"userId" validate:"required"`
	OrderData  json.RawMessage `json:"orderData"`
	TotalPrice float64         `json:"totalPrice"`
	TotalItems int             `json:"totalItems"`
}

// ContactRequest is the payload for POST /api/contact. Fields are
// forwarded verbatim to the mail relay; none are mandatory.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}
