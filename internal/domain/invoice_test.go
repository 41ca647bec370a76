package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from InvoiceStatus
		to   InvoiceStatus
		want bool
	}{
		{name: "issued to transferred", from: InvoiceIssued, to: InvoiceTransferred, want: true},
		{name: "issued to paid is not wired", from: InvoiceIssued, to: InvoicePaid, want: false},
		{name: "transferred is terminal", from: InvoiceTransferred, to: InvoiceIssued, want: false},
		{name: "no re-confirmation", from: InvoiceTransferred, to: InvoiceTransferred, want: false},
		{name: "paid has no outgoing transitions", from: InvoicePaid, to: InvoiceTransferred, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}
