package store

import (
	"context"
	"errors"
)

// ErrEmailTaken is returned by InsertUser when the email would violate
// the unique constraint on users.email.
var ErrEmailTaken = errors.New("email already registered")

// Store is the persistence contract shared by every backend variant.
// FindUserByEmail returns (nil, nil) when no user matches. Orders are
// listed newest first. No call retries; any backend failure propagates
// to the caller as-is.
type Store interface {
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	InsertUser(ctx context.Context, u *User) (int64, error)
	UpdateUserProfile(ctx context.Context, id int64, firstName, lastName, phone, address string) (int64, error)
	InsertOrder(ctx context.Context, o *Order) (int64, error)
	ListOrdersByUser(ctx context.Context, userID int64) ([]Order, error)
	Close() error
}
