package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAssigned RequestStatus = "assigned"
)

// TranslationRequest is a company's request for translation work.
// Translator is set iff Status is RequestAssigned.
type TranslationRequest struct {
	ID           string
	CompanyID    string
	CompanyEmail string
	CompanyName  string
	RequestType  string
	City         string
	Language     string
	Specialty    string
	Location     string
	Cost         *decimal.Decimal
	Status       RequestStatus
	TranslatorID *string
	Translator   *Translator
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RequestRepository interface {
	CreateRequest(request *TranslationRequest) error
	GetRequestByID(requestID string) (*TranslationRequest, error)
	ListRequests(requestType string) ([]*TranslationRequest, error)
	UpdateRequest(request *TranslationRequest) error
	// DeleteRequest removes the request and, through the invoice
	// foreign key, any invoice issued for it.
	DeleteRequest(requestID string) error
	// AssignTranslator persists the assignment and issues the invoice
	// in one transaction. Returns ErrConflict when the request already
	// has an invoice.
	AssignTranslator(requestID, translatorID string, invoice *Invoice) error
}
