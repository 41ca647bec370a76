package request

import (
	"github.com/shopspring/decimal"
	"github.com/translationbridge/request-service/internal/domain"
)

type CreateRequestInput struct {
	Actor       domain.Actor
	CompanyName string
	RequestType string
	City        string
	Language    string
	Specialty   string
	Location    string
	Cost        *decimal.Decimal
}

type UpdateRequestInput struct {
	RequestID   string
	CompanyName string
	RequestType string
	City        string
	Language    string
	Specialty   string
	Location    string
	Cost        *decimal.Decimal
}

type ExpressInterestInput struct {
	Actor     domain.Actor
	RequestID string
}

type AssignTranslatorInput struct {
	Actor        domain.Actor
	RequestID    string
	TranslatorID string
}
