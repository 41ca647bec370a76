package domain

// Actor is the authenticated identity performing an operation.
// Identity storage and authentication live outside this service;
// the delivery layer builds an Actor from the gateway-provided
// identity headers.
type Actor struct {
	UserID        string
	Email         string
	Username      string
	Authenticated bool
}
