package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceIssued InvoiceStatus = "issued"
	// InvoicePaid is part of the billing vocabulary but no operation
	// transitions into it yet, pending product clarification.
	InvoicePaid        InvoiceStatus = "paid"
	InvoiceTransferred InvoiceStatus = "transferred"
)

// CanTransitionTo reports whether the forward-only payment state
// machine allows moving from s to next.
func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	switch s {
	case InvoiceIssued:
		return next == InvoiceTransferred
	default:
		return false
	}
}

// Invoice is the billing record tying one request to one translator.
// Exactly zero or one invoice exists per request. Amount is copied
// from the request cost at issuance and never recomputed.
type Invoice struct {
	ID                       string
	RequestID                string
	TranslatorID             *string
	Translator               *Translator
	Amount                   decimal.Decimal
	IssueDate                time.Time
	Status                   InvoiceStatus
	TransactionID            *string
	CompanyPaymentDate       *time.Time
	TransferConfirmationDate *time.Time
}

type InvoiceRepository interface {
	GetInvoiceByID(invoiceID string) (*Invoice, error)
	GetInvoiceByRequestID(requestID string) (*Invoice, error)
	// UpdateInvoiceTransfer records the transfer confirmation: the new
	// status and both confirmation timestamps.
	UpdateInvoiceTransfer(invoiceID string, status InvoiceStatus, companyPaymentDate, transferConfirmationDate time.Time) error
}
