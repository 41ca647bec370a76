package mappers

import (
	"github.com/translationbridge/request-service/internal/domain"
	"github.com/translationbridge/request-service/internal/infrastructure/postgres/models"
)

func ToDomainInvoice(model *models.InvoiceModel) *domain.Invoice {
	invoice := &domain.Invoice{
		ID:                       model.ID,
		RequestID:                model.RequestID,
		TranslatorID:             model.TranslatorID,
		Amount:                   model.Amount,
		IssueDate:                model.IssueDate,
		Status:                   model.Status,
		TransactionID:            model.TransactionID,
		CompanyPaymentDate:       model.CompanyPaymentDate,
		TransferConfirmationDate: model.TransferConfirmationDate,
	}
	if model.Translator != nil {
		invoice.Translator = ToDomainTranslator(model.Translator)
	}
	return invoice
}

func ToGORMInvoice(invoice *domain.Invoice) *models.InvoiceModel {
	return &models.InvoiceModel{
		ID:                       invoice.ID,
		RequestID:                invoice.RequestID,
		TranslatorID:             invoice.TranslatorID,
		Amount:                   invoice.Amount,
		IssueDate:                invoice.IssueDate,
		Status:                   invoice.Status,
		TransactionID:            invoice.TransactionID,
		CompanyPaymentDate:       invoice.CompanyPaymentDate,
		TransferConfirmationDate: invoice.TransferConfirmationDate,
	}
}
