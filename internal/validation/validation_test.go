package validation

import (
	"encoding/json"
	"testing"
)

func TestRegisterRequest_Valid(t *testing.T) {
	v := New()

	req := RegisterRequest{
		Email:     "amina@example.com",
		Password:  "s3cret",
		FirstName: "Amina",
		LastName:  "Diop",
		Phone:     "+221 77 000 00 00",
		Address:   "Dakar",
	}

	if err := v.Struct(req); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
}

func TestRegisterRequest_MissingCredentials(t *testing.T) {
	v := New()

	req := RegisterRequest{FirstName: "Amina"}
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation errors for missing email/password, got nil")
	}
}

func TestRegisterRequest_BadEmail(t *testing.T) {
	v := New()

	req := RegisterRequest{Email: "not-an-email", Password: "pw"}
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for malformed email, got nil")
	}
}

func TestSaveOrderRequest_OpaquePayload(t *testing.T) {
	v := New()

	// arbitrary nested order contents must pass untouched
	req := SaveOrderRequest{
		UserID:     42,
		OrderData:  json.RawMessage(`{"items":[{"name":"tomatoes","qty":3}],"note":"deliver am"}`),
		TotalPrice: 12.5,
		TotalItems: 3,
	}
	if err := v.Struct(req); err != nil {
		t.Fatalf("expected opaque payload to validate, got: %v", err)
	}
}

func TestSaveOrderRequest_MissingUser(t *testing.T) {
	v := New()

	req := SaveOrderRequest{TotalPrice: 10}
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for missing userId, got nil")
	}
}
