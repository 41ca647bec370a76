package usecase

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/translationbridge/request-service/internal/domain"
	"github.com/translationbridge/request-service/internal/infrastructure/kafka"
	"github.com/translationbridge/request-service/internal/infrastructure/mailer"
	invoicedto "github.com/translationbridge/request-service/internal/usecase/dto/invoice"
)

// ConfirmTransfer records the company's assertion that funds moved to
// the translator. Both confirmation timestamps get the same instant:
// the system distinguishes the two moments conceptually, not in time.
// The committed transition is authoritative; the follow-up email is
// best-effort.
func (uc *DefaultInvoiceUsecase) ConfirmTransfer(input *invoicedto.ConfirmTransferInput) (*invoicedto.ConfirmTransferOutput, error) {
	invoice, err := uc.InvoiceRepo.GetInvoiceByID(input.InvoiceID)
	if err != nil {
		return nil, err
	}

	request, err := uc.RequestRepo.GetRequestByID(invoice.RequestID)
	if err != nil {
		return nil, err
	}

	// Only the request's owning company can confirm the transfer.
	if !input.Actor.Authenticated || input.Actor.UserID != request.CompanyID {
		return nil, domain.ErrUnauthorized
	}

	if !invoice.Status.CanTransitionTo(domain.InvoiceTransferred) {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	if err := uc.InvoiceRepo.UpdateInvoiceTransfer(invoice.ID, domain.InvoiceTransferred, now, now); err != nil {
		return nil, err
	}

	invoice.Status = domain.InvoiceTransferred
	invoice.CompanyPaymentDate = &now
	invoice.TransferConfirmationDate = &now

	if uc.Metrics != nil {
		uc.Metrics.InvoicesTransferredTotal.Inc()
	}
	uc.publishTransferEvent(request, invoice)

	output := &invoicedto.ConfirmTransferOutput{Invoice: invoice}
	if invoice.Translator != nil {
		subject, body := mailer.TransferConfirmedMessage(request, invoice.Translator, invoice)
		if err := uc.Notifier.Send(invoice.Translator.Email, subject, body); err != nil {
			log.Warn().Err(err).Str("invoice_id", invoice.ID).Msg("transfer notification failed")
			if uc.Metrics != nil {
				uc.Metrics.NotifyFailuresTotal.WithLabelValues("transfer_confirmed").Inc()
			}
			output.Warning = "payment confirmed, but failed to send notification email to the translator"
		}
	}

	return output, nil
}

func (uc *DefaultInvoiceUsecase) publishTransferEvent(request *domain.TranslationRequest, invoice *domain.Invoice) {
	if uc.Publisher == nil {
		return
	}
	event := kafka.RequestEvent{
		RequestID:    request.ID,
		CompanyID:    request.CompanyID,
		TranslatorID: derefString(invoice.TranslatorID),
		InvoiceID:    invoice.ID,
		Status:       string(domain.InvoiceTransferred),
		Amount:       invoice.Amount.StringFixed(2),
	}
	go func(event kafka.RequestEvent) {
		if err := uc.Publisher.PublishRequest(event); err != nil {
			log.Error().Err(err).Str("invoice_id", event.InvoiceID).Msg("failed to publish transfer event")
		}
	}(event)
}
