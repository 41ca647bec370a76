package usecase

import (
	"github.com/rs/zerolog/log"
	"github.com/translationbridge/request-service/internal/domain"
	"github.com/translationbridge/request-service/internal/infrastructure/kafka"
)

func RequestEventCreated(request *domain.TranslationRequest) kafka.RequestEvent {
	return kafka.RequestEvent{
		RequestID: request.ID,
		CompanyID: request.CompanyID,
		Status:    string(domain.RequestPending),
	}
}

func RequestEventAssigned(request *domain.TranslationRequest, invoice *domain.Invoice) kafka.RequestEvent {
	return kafka.RequestEvent{
		RequestID:    request.ID,
		CompanyID:    request.CompanyID,
		TranslatorID: derefString(request.TranslatorID),
		InvoiceID:    invoice.ID,
		Status:       string(domain.RequestAssigned),
		Amount:       invoice.Amount.StringFixed(2),
	}
}

// publishEvent hands the event off to the bus without gating the
// caller on broker availability.
func (uc *DefaultRequestUsecase) publishEvent(event kafka.RequestEvent) {
	if uc.Publisher == nil {
		return
	}
	go func(event kafka.RequestEvent) {
		if err := uc.Publisher.PublishRequest(event); err != nil {
			log.Error().Err(err).Str("request_id", event.RequestID).Msg("failed to publish request event")
		}
	}(event)
}

func (uc *DefaultRequestUsecase) recordRequestCreated(request *domain.TranslationRequest) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RequestsCreatedTotal.WithLabelValues(request.RequestType).Inc()
}

func (uc *DefaultRequestUsecase) recordRequestAssigned(request *domain.TranslationRequest, invoice *domain.Invoice) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RequestsAssignedTotal.WithLabelValues(request.RequestType).Inc()
	uc.Metrics.InvoicesIssuedTotal.Inc()
	amount, _ := invoice.Amount.Float64()
	uc.Metrics.InvoicesIssuedAmount.Add(amount)
}

func (uc *DefaultRequestUsecase) recordNotifyFailure(event string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.NotifyFailuresTotal.WithLabelValues(event).Inc()
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
