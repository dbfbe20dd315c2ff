package authtoken

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// fakeDirectory implements CustomerStateService on top of the token service,
// the way an HTTP layer would wire it against a real customer store.
type fakeDirectory struct {
	tokens *Service
	byID   map[int64]*Customer
	byName map[string]*Customer
	nextID int64
}

func newFakeDirectory(tokens *Service) *fakeDirectory {
	return &fakeDirectory{
		tokens: tokens,
		byID:   make(map[int64]*Customer),
		byName: make(map[string]*Customer),
		nextID: 1,
	}
}

func (d *fakeDirectory) RegisterNewCustomer(_ context.Context, reg Registration) (*Customer, error) {
	if reg.Username == "" || reg.Password != reg.PasswordConfirm {
		return nil, errors.New("invalid registration")
	}
	customer := &Customer{
		ID:           d.nextID,
		Username:     reg.Username,
		EmailAddress: reg.EmailAddress,
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
	}
	d.nextID++
	d.byID[customer.ID] = customer
	d.byName[customer.Username] = customer
	return customer, nil
}

func (d *fakeDirectory) GetCustomer(r *http.Request) (*Customer, error) {
	user, err := d.tokens.Authenticate(r)
	if err != nil {
		return nil, err
	}
	customer, ok := d.byName[user.Username]
	if !ok {
		return nil, errors.New("unknown customer")
	}
	return customer, nil
}

func TestCustomerStateServiceBoundary(t *testing.T) {
	service, _ := newTestService(t)
	directory := newFakeDirectory(service)

	registered, err := directory.RegisterNewCustomer(context.Background(), Registration{
		EmailAddress:    "alice@example.com",
		Username:        "alice",
		Password:        "s3cret",
		PasswordConfirm: "s3cret",
		FirstName:       "Alice",
		LastName:        "Smith",
	})
	if err != nil {
		t.Fatalf("RegisterNewCustomer: %v", err)
	}

	token, err := service.GenerateAuthenticationToken(registered.ID, registered.Username, false, "")
	if err != nil {
		t.Fatalf("GenerateAuthenticationToken: %v", err)
	}

	r := httptest.NewRequest("GET", "/customer", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	customer, err := directory.GetCustomer(r)
	if err != nil {
		t.Fatalf("GetCustomer: %v", err)
	}
	if customer.ID != registered.ID || customer.EmailAddress != "alice@example.com" {
		t.Fatalf("unexpected customer: %+v", customer)
	}

	bare := httptest.NewRequest("GET", "/customer", nil)
	if _, err := directory.GetCustomer(bare); !IsInvalid(err) {
		t.Fatalf("expected invalid_token without credentials, got %v", err)
	}
}
