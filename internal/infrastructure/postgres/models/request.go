package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/translationbridge/request-service/internal/domain"
)

type RequestModel struct {
	ID           string               `gorm:"primaryKey;type:uuid"`
	CompanyID    string               `gorm:"index:idx_request_company"`
	CompanyEmail string
	CompanyName  string               `gorm:"size:200"`
	RequestType  string               `gorm:"index:idx_request_type"`
	City         string
	Language     string
	Specialty    string
	Location     string
	Cost         *decimal.Decimal     `gorm:"type:numeric(10,2)"`
	Status       domain.RequestStatus `gorm:"index:idx_request_status"`
	TranslatorID *string              `gorm:"type:uuid"`
	Translator   *TranslatorModel     `gorm:"foreignKey:TranslatorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	CreatedAt    time.Time            `gorm:"index:idx_request_created_at"`
	UpdatedAt    time.Time
}
