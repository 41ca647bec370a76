package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/translationbridge/request-service/internal/domain"
	"github.com/translationbridge/request-service/internal/infrastructure/postgres/mappers"
	"github.com/translationbridge/request-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultInvoiceRepository struct {
	DB *gorm.DB
}

func NewDefaultInvoiceRepository(db *gorm.DB) *DefaultInvoiceRepository {
	return &DefaultInvoiceRepository{DB: db}
}

func (r *DefaultInvoiceRepository) GetInvoiceByID(invoiceID string) (*domain.Invoice, error) {
	var invoiceModel models.InvoiceModel
	err := r.DB.
		Preload("Translator").
		First(&invoiceModel, "id = ?", invoiceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice: %w", err)
	}
	return mappers.ToDomainInvoice(&invoiceModel), nil
}

func (r *DefaultInvoiceRepository) GetInvoiceByRequestID(requestID string) (*domain.Invoice, error) {
	var invoiceModel models.InvoiceModel
	err := r.DB.
		Preload("Translator").
		First(&invoiceModel, "request_id = ?", requestID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by request: %w", err)
	}
	return mappers.ToDomainInvoice(&invoiceModel), nil
}

func (r *DefaultInvoiceRepository) UpdateInvoiceTransfer(invoiceID string, status domain.InvoiceStatus, companyPaymentDate, transferConfirmationDate time.Time) error {
	result := r.DB.Model(&models.InvoiceModel{}).
		Where("id = ?", invoiceID).
		Updates(map[string]interface{}{
			"status":                     status,
			"company_payment_date":       companyPaymentDate,
			"transfer_confirmation_date": transferConfirmationDate,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update invoice transfer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
