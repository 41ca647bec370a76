package invoice

import "github.com/translationbridge/request-service/internal/domain"

type GetInvoiceInput struct {
	Actor     domain.Actor
	InvoiceID string
}

type ConfirmTransferInput struct {
	Actor     domain.Actor
	InvoiceID string
}
