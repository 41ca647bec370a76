package usecase

import (
	"errors"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/translationbridge/request-service/internal/domain"
	"github.com/translationbridge/request-service/internal/infrastructure/mailer"
	requestdto "github.com/translationbridge/request-service/internal/usecase/dto/request"
)

// AssignTranslator commits the request mutation and the invoice
// issuance as one unit, then notifies the translator. The notification
// is best-effort: its failure comes back as a warning on the output,
// never as a rolled-back assignment.
func (uc *DefaultRequestUsecase) AssignTranslator(input *requestdto.AssignTranslatorInput) (*requestdto.AssignOutput, error) {
	request, err := uc.RequestRepo.GetRequestByID(input.RequestID)
	if err != nil {
		return nil, err
	}

	// Only the owning company can assign.
	if !input.Actor.Authenticated || input.Actor.UserID != request.CompanyID {
		return nil, domain.ErrUnauthorized
	}

	translator, err := uc.TranslatorRepo.GetTranslatorByID(input.TranslatorID)
	if err != nil {
		return nil, err
	}

	if request.Status != domain.RequestPending {
		uc.recordAssignConflict()
		return nil, domain.ErrConflict
	}

	invoice, err := newInvoice(request, translator)
	if err != nil {
		return nil, err
	}

	if err := uc.RequestRepo.AssignTranslator(request.ID, translator.ID, invoice); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			uc.recordAssignConflict()
		}
		return nil, err
	}

	request.Status = domain.RequestAssigned
	request.TranslatorID = &translator.ID
	request.Translator = translator

	uc.recordRequestAssigned(request, invoice)
	uc.publishEvent(RequestEventAssigned(request, invoice))

	output := &requestdto.AssignOutput{Request: request, Invoice: invoice}
	subject, body := mailer.InvoiceIssuedMessage(request, translator, invoice)
	if err := uc.Notifier.Send(translator.Email, subject, body); err != nil {
		log.Warn().Err(err).Str("request_id", request.ID).Msg("invoice notification failed")
		uc.recordNotifyFailure("invoice_issued")
		output.Warning = "translator assigned and invoice issued, but the notification email could not be sent"
	}

	return output, nil
}

// newInvoice freezes the invoice amount at the request cost, or zero
// when no cost was stated.
func newInvoice(request *domain.TranslationRequest, translator *domain.Translator) (*domain.Invoice, error) {
	idGenerator, err := nanoid.Standard(21)
	if err != nil {
		return nil, err
	}
	amount := decimal.Zero
	if request.Cost != nil {
		amount = *request.Cost
	}
	return &domain.Invoice{
		ID:           idGenerator(),
		RequestID:    request.ID,
		TranslatorID: &translator.ID,
		Amount:       amount,
		IssueDate:    time.Now(),
		Status:       domain.InvoiceIssued,
	}, nil
}

func (uc *DefaultRequestUsecase) recordAssignConflict() {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.AssignConflictsTotal.Inc()
}
