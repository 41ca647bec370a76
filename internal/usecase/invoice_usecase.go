package usecase

import (
	"github.com/translationbridge/request-service/internal/domain"
	"github.com/translationbridge/request-service/internal/infrastructure/metrics"
	invoicedto "github.com/translationbridge/request-service/internal/usecase/dto/invoice"
)

type InvoiceUsecase interface {
	GetInvoice(input *invoicedto.GetInvoiceInput) (*domain.Invoice, error)
	GetInvoiceByRequestID(requestID string) (*domain.Invoice, error)
	ConfirmTransfer(input *invoicedto.ConfirmTransferInput) (*invoicedto.ConfirmTransferOutput, error)
}

type DefaultInvoiceUsecase struct {
	InvoiceRepo domain.InvoiceRepository
	RequestRepo domain.RequestRepository
	Notifier    domain.Notifier
	Publisher   RequestEventPublisher
	Metrics     *metrics.LifecycleMetrics
}

func NewDefaultInvoiceUsecase(
	invoiceRepo domain.InvoiceRepository,
	requestRepo domain.RequestRepository,
	notifier domain.Notifier,
	publisher RequestEventPublisher,
	lifecycleMetrics *metrics.LifecycleMetrics) *DefaultInvoiceUsecase {

	return &DefaultInvoiceUsecase{
		InvoiceRepo: invoiceRepo,
		RequestRepo: requestRepo,
		Notifier:    notifier,
		Publisher:   publisher,
		Metrics:     lifecycleMetrics,
	}
}

// GetInvoice enforces the viewing rule: only the request's owning
// company or the invoice's assigned translator may see the invoice.
func (uc *DefaultInvoiceUsecase) GetInvoice(input *invoicedto.GetInvoiceInput) (*domain.Invoice, error) {
	invoice, err := uc.InvoiceRepo.GetInvoiceByID(input.InvoiceID)
	if err != nil {
		return nil, err
	}

	request, err := uc.RequestRepo.GetRequestByID(invoice.RequestID)
	if err != nil {
		return nil, err
	}

	if !input.Actor.Authenticated {
		return nil, domain.ErrUnauthorized
	}
	isOwner := input.Actor.UserID == request.CompanyID
	isTranslator := invoice.Translator != nil && input.Actor.UserID == invoice.Translator.UserID
	if !isOwner && !isTranslator {
		return nil, domain.ErrUnauthorized
	}

	return invoice, nil
}

func (uc *DefaultInvoiceUsecase) GetInvoiceByRequestID(requestID string) (*domain.Invoice, error) {
	return uc.InvoiceRepo.GetInvoiceByRequestID(requestID)
}
