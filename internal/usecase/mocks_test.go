package usecase

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/translationbridge/request-service/internal/domain"
	"github.com/translationbridge/request-service/internal/infrastructure/kafka"
)

type mockRequestRepo struct{ mock.Mock }

func (m *mockRequestRepo) CreateRequest(request *domain.TranslationRequest) error {
	return m.Called(request).Error(0)
}

func (m *mockRequestRepo) GetRequestByID(requestID string) (*domain.TranslationRequest, error) {
	args := m.Called(requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TranslationRequest), args.Error(1)
}

func (m *mockRequestRepo) ListRequests(requestType string) ([]*domain.TranslationRequest, error) {
	args := m.Called(requestType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TranslationRequest), args.Error(1)
}

func (m *mockRequestRepo) UpdateRequest(request *domain.TranslationRequest) error {
	return m.Called(request).Error(0)
}

func (m *mockRequestRepo) DeleteRequest(requestID string) error {
	return m.Called(requestID).Error(0)
}

func (m *mockRequestRepo) AssignTranslator(requestID, translatorID string, invoice *domain.Invoice) error {
	return m.Called(requestID, translatorID, invoice).Error(0)
}

type mockTranslatorRepo struct{ mock.Mock }

func (m *mockTranslatorRepo) CreateTranslator(translator *domain.Translator) error {
	return m.Called(translator).Error(0)
}

func (m *mockTranslatorRepo) GetTranslatorByID(translatorID string) (*domain.Translator, error) {
	args := m.Called(translatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Translator), args.Error(1)
}

func (m *mockTranslatorRepo) GetTranslatorByUserID(userID string) (*domain.Translator, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Translator), args.Error(1)
}

func (m *mockTranslatorRepo) ListTranslators() ([]*domain.Translator, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Translator), args.Error(1)
}

func (m *mockTranslatorRepo) UpdateTranslator(translator *domain.Translator) error {
	return m.Called(translator).Error(0)
}

func (m *mockTranslatorRepo) DeleteTranslator(translatorID string) error {
	return m.Called(translatorID).Error(0)
}

func (m *mockTranslatorRepo) CreateReview(review *domain.Review) error {
	return m.Called(review).Error(0)
}

func (m *mockTranslatorRepo) ListReviews(translatorID string) ([]*domain.Review, error) {
	args := m.Called(translatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Review), args.Error(1)
}

type mockInvoiceRepo struct{ mock.Mock }

func (m *mockInvoiceRepo) GetInvoiceByID(invoiceID string) (*domain.Invoice, error) {
	args := m.Called(invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *mockInvoiceRepo) GetInvoiceByRequestID(requestID string) (*domain.Invoice, error) {
	args := m.Called(requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *mockInvoiceRepo) UpdateInvoiceTransfer(invoiceID string, status domain.InvoiceStatus, companyPaymentDate, transferConfirmationDate time.Time) error {
	return m.Called(invoiceID, status, companyPaymentDate, transferConfirmationDate).Error(0)
}

type mockDirectoryRepo struct{ mock.Mock }

func (m *mockDirectoryRepo) ListCountries() ([]*domain.Country, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Country), args.Error(1)
}

func (m *mockDirectoryRepo) ListCities() ([]*domain.City, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.City), args.Error(1)
}

func (m *mockDirectoryRepo) ListLanguages() ([]*domain.Language, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Language), args.Error(1)
}

func (m *mockDirectoryRepo) GetLanguagesByNames(names []string) ([]domain.Language, error) {
	args := m.Called(names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Language), args.Error(1)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) Send(to, subject, body string) error {
	return m.Called(to, subject, body).Error(0)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) PublishRequest(event kafka.RequestEvent) error {
	return m.Called(event).Error(0)
}

// Shared fixtures.

func pendingRequest() *domain.TranslationRequest {
	cost := decimal.NewFromInt(100)
	return &domain.TranslationRequest{
		ID:           "r-1",
		CompanyID:    "company-1",
		CompanyEmail: "company@test.lt",
		CompanyName:  "Acme Corp",
		RequestType:  "document",
		City:         "Paris",
		Language:     "French",
		Cost:         &cost,
		Status:       domain.RequestPending,
	}
}

func testTranslator() *domain.Translator {
	return &domain.Translator{
		ID:        "t-1",
		UserID:    "user-t1",
		Email:     "translator@test.lt",
		Name:      "Jean",
		Specialty: "legal",
		Rating:    5,
		City:      &domain.City{ID: "city-1", Name: "Paris"},
		Languages: []domain.Language{{ID: "lang-1", Name: "French"}},
	}
}
