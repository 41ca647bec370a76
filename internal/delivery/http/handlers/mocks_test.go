package handlers

import (
	"github.com/stretchr/testify/mock"
	"github.com/translationbridge/request-service/internal/domain"
	invoicedto "github.com/translationbridge/request-service/internal/usecase/dto/invoice"
	requestdto "github.com/translationbridge/request-service/internal/usecase/dto/request"
)

type mockRequestUsecase struct{ mock.Mock }

func (m *mockRequestUsecase) CreateRequest(input *requestdto.CreateRequestInput) (*requestdto.RequestOutput, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*requestdto.RequestOutput), args.Error(1)
}

func (m *mockRequestUsecase) UpdateRequest(input *requestdto.UpdateRequestInput) (*requestdto.RequestOutput, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*requestdto.RequestOutput), args.Error(1)
}

func (m *mockRequestUsecase) DeleteRequest(requestID string) error {
	return m.Called(requestID).Error(0)
}

func (m *mockRequestUsecase) GetRequestByID(requestID string) (*domain.TranslationRequest, error) {
	args := m.Called(requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TranslationRequest), args.Error(1)
}

func (m *mockRequestUsecase) ListRequests(requestType string) ([]*domain.TranslationRequest, error) {
	args := m.Called(requestType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TranslationRequest), args.Error(1)
}

func (m *mockRequestUsecase) MatchRequest(requestID string) ([]*domain.Translator, error) {
	args := m.Called(requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Translator), args.Error(1)
}

func (m *mockRequestUsecase) ExpressInterest(input *requestdto.ExpressInterestInput) (*requestdto.ExpressInterestOutput, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*requestdto.ExpressInterestOutput), args.Error(1)
}

func (m *mockRequestUsecase) AssignTranslator(input *requestdto.AssignTranslatorInput) (*requestdto.AssignOutput, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*requestdto.AssignOutput), args.Error(1)
}

type mockInvoiceUsecase struct{ mock.Mock }

func (m *mockInvoiceUsecase) GetInvoice(input *invoicedto.GetInvoiceInput) (*domain.Invoice, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *mockInvoiceUsecase) GetInvoiceByRequestID(requestID string) (*domain.Invoice, error) {
	args := m.Called(requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *mockInvoiceUsecase) ConfirmTransfer(input *invoicedto.ConfirmTransferInput) (*invoicedto.ConfirmTransferOutput, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoicedto.ConfirmTransferOutput), args.Error(1)
}
