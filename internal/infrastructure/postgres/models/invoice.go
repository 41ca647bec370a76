package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/translationbridge/request-service/internal/domain"
)

// InvoiceModel keeps exactly one row per request: the unique index on
// RequestID is what rejects a concurrent duplicate issuance.
type InvoiceModel struct {
	ID                       string               `gorm:"primaryKey"`
	RequestID                string               `gorm:"type:uuid;uniqueIndex:idx_invoice_request"`
	Request                  RequestModel         `gorm:"foreignKey:RequestID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	TranslatorID             *string              `gorm:"type:uuid"`
	Translator               *TranslatorModel     `gorm:"foreignKey:TranslatorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Amount                   decimal.Decimal      `gorm:"type:numeric(10,2)"`
	IssueDate                time.Time
	Status                   domain.InvoiceStatus `gorm:"index:idx_invoice_status"`
	TransactionID            *string              `gorm:"uniqueIndex:idx_invoice_transaction;size:100"`
	CompanyPaymentDate       *time.Time
	TransferConfirmationDate *time.Time
}
