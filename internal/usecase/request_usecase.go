package usecase

import (
	"github.com/translationbridge/request-service/internal/domain"
	"github.com/translationbridge/request-service/internal/infrastructure/kafka"
	"github.com/translationbridge/request-service/internal/infrastructure/metrics"
	requestdto "github.com/translationbridge/request-service/internal/usecase/dto/request"
)

type RequestUsecase interface {
	CreateRequest(input *requestdto.CreateRequestInput) (*requestdto.RequestOutput, error)
	UpdateRequest(input *requestdto.UpdateRequestInput) (*requestdto.RequestOutput, error)
	DeleteRequest(requestID string) error

	GetRequestByID(requestID string) (*domain.TranslationRequest, error)
	ListRequests(requestType string) ([]*domain.TranslationRequest, error)
	MatchRequest(requestID string) ([]*domain.Translator, error)

	ExpressInterest(input *requestdto.ExpressInterestInput) (*requestdto.ExpressInterestOutput, error)
	AssignTranslator(input *requestdto.AssignTranslatorInput) (*requestdto.AssignOutput, error)
}

// RequestEventPublisher publishes lifecycle events to the message bus.
type RequestEventPublisher interface {
	PublishRequest(event kafka.RequestEvent) error
}

type DefaultRequestUsecase struct {
	RequestRepo    domain.RequestRepository
	TranslatorRepo domain.TranslatorRepository
	InvoiceRepo    domain.InvoiceRepository
	Notifier       domain.Notifier
	Publisher      RequestEventPublisher
	Metrics        *metrics.LifecycleMetrics
	PlatformURL    string
}

func NewDefaultRequestUsecase(
	requestRepo domain.RequestRepository,
	translatorRepo domain.TranslatorRepository,
	invoiceRepo domain.InvoiceRepository,
	notifier domain.Notifier,
	publisher RequestEventPublisher,
	lifecycleMetrics *metrics.LifecycleMetrics,
	platformURL string) *DefaultRequestUsecase {

	return &DefaultRequestUsecase{
		RequestRepo:    requestRepo,
		TranslatorRepo: translatorRepo,
		InvoiceRepo:    invoiceRepo,
		Notifier:       notifier,
		Publisher:      publisher,
		Metrics:        lifecycleMetrics,
		PlatformURL:    platformURL,
	}
}
