package authtoken

import (
	"context"
	"net/http"
	"time"
)

// Registration carries the fields a new customer signs up with. Validation of
// the business rules behind them belongs to the directory, not this module.
type Registration struct {
	EmailAddress    string
	Username        string
	Password        string
	PasswordConfirm string
	FirstName       string
	LastName        string
}

// Customer is the identity record resolved by an external customer directory.
type Customer struct {
	ID           int64
	Username     string
	EmailAddress string
	FirstName    string
	LastName     string
	Registered   time.Time
}

// CustomerStateService is the boundary to the customer directory. The token
// service is a producer and consumer of the identities it resolves; the
// lookup and creation of the underlying records happen elsewhere.
// Implementations typically call Service.Authenticate or
// Service.ParseCustomerToken on the inbound request and then hit their own
// store.
type CustomerStateService interface {
	// RegisterNewCustomer creates and registers a new customer record from
	// the supplied registration data.
	RegisterNewCustomer(ctx context.Context, reg Registration) (*Customer, error)

	// GetCustomer resolves the customer the inbound request authenticates
	// as, or an error when the request carries no usable credential.
	GetCustomer(r *http.Request) (*Customer, error)
}
