package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemory_InsertUser_DuplicateEmail(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id, err := m.InsertUser(ctx, &User{Email: "a@b.com", PasswordHash: "x"})
	if err != nil {
		t.Fatalf("InsertUser error: %v", err)
	}
	if id == 0 {
		t.Fatal("expected assigned id")
	}

	_, err = m.InsertUser(ctx, &User{Email: "a@b.com", PasswordHash: "y"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got: %v", err)
	}

	// no second row must exist
	u, err := m.FindUserByEmail(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("FindUserByEmail error: %v", err)
	}
	if u == nil || u.ID != id || u.PasswordHash != "x" {
		t.Fatalf("first row must be untouched, got %+v", u)
	}
}

func TestMemory_FindUserByEmail_Missing(t *testing.T) {
	m := NewMemory()
	u, err := m.FindUserByEmail(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("FindUserByEmail error: %v", err)
	}
	if u != nil {
		t.Fatalf("expected nil for unknown email, got %+v", u)
	}
}

func TestMemory_UpdateUserProfile(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id, err := m.InsertUser(ctx, &User{Email: "a@b.com"})
	if err != nil {
		t.Fatalf("InsertUser error: %v", err)
	}

	affected, err := m.UpdateUserProfile(ctx, id, "Amina", "Diop", "77", "Dakar")
	if err != nil {
		t.Fatalf("UpdateUserProfile error: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 row affected, got %d", affected)
	}

	u, _ := m.FindUserByEmail(ctx, "a@b.com")
	if u.FirstName != "Amina" || u.Address != "Dakar" {
		t.Fatalf("profile not updated: %+v", u)
	}

	// unknown id updates zero rows but is not an error
	affected, err = m.UpdateUserProfile(ctx, 9999, "X", "Y", "", "")
	if err != nil {
		t.Fatalf("UpdateUserProfile error: %v", err)
	}
	if affected != 0 {
		t.Fatalf("expected 0 rows affected for unknown id, got %d", affected)
	}
}

func TestMemory_ListOrdersByUser_NewestFirst(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	clock := base
	m.nowFunc = func() time.Time { return clock }

	for i := 0; i < 3; i++ {
		clock = base.Add(time.Duration(i) * time.Minute)
		if _, err := m.InsertOrder(ctx, &Order{UserID: 1, OrderData: "{}", TotalItems: i}); err != nil {
			t.Fatalf("InsertOrder error: %v", err)
		}
	}
	// an order for another user must not appear
	if _, err := m.InsertOrder(ctx, &Order{UserID: 2, OrderData: "{}"}); err != nil {
		t.Fatalf("InsertOrder error: %v", err)
	}

	orders, err := m.ListOrdersByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListOrdersByUser error: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	for i := 1; i < len(orders); i++ {
		if orders[i].CreatedAt.After(orders[i-1].CreatedAt) {
			t.Fatalf("orders not in non-increasing creation order at %d", i)
		}
	}
	if orders[0].TotalItems != 2 {
		t.Fatalf("most recent order must come first, got %+v", orders[0])
	}
}

func TestMemory_InsertOrder_DefaultsStatusPending(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id, err := m.InsertOrder(ctx, &Order{UserID: 1, OrderData: `{"items":[]}`})
	if err != nil {
		t.Fatalf("InsertOrder error: %v", err)
	}
	if id == 0 {
		t.Fatal("expected assigned id")
	}

	orders, _ := m.ListOrdersByUser(ctx, 1)
	if len(orders) != 1 || orders[0].Status != StatusPending {
		t.Fatalf("expected status %q, got %+v", StatusPending, orders)
	}
}

func TestMemory_ListOrdersByUser_Empty(t *testing.T) {
	m := NewMemory()
	orders, err := m.ListOrdersByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListOrdersByUser error: %v", err)
	}
	if orders == nil || len(orders) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", orders)
	}
}
