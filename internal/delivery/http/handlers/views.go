package handlers

import (
	"time"

	"github.com/translationbridge/request-service/internal/domain"
)

type requestView struct {
	ID           string     `json:"id"`
	CompanyID    string     `json:"company_id"`
	CompanyName  string     `json:"company_name"`
	RequestType  string     `json:"request_type"`
	City         string     `json:"city,omitempty"`
	Language     string     `json:"language,omitempty"`
	Specialty    string     `json:"specialty,omitempty"`
	Location     string     `json:"location,omitempty"`
	Cost         *string    `json:"cost,omitempty"`
	Status       string     `json:"status"`
	TranslatorID *string    `json:"translator_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toRequestView(request *domain.TranslationRequest) requestView {
	view := requestView{
		ID:           request.ID,
		CompanyID:    request.CompanyID,
		CompanyName:  request.CompanyName,
		RequestType:  request.RequestType,
		City:         request.City,
		Language:     request.Language,
		Specialty:    request.Specialty,
		Location:     request.Location,
		Status:       string(request.Status),
		TranslatorID: request.TranslatorID,
		CreatedAt:    request.CreatedAt,
	}
	if request.Cost != nil {
		cost := request.Cost.StringFixed(2)
		view.Cost = &cost
	}
	return view
}

type translatorView struct {
	ID         string   `json:"id"`
	UserID     string   `json:"user_id"`
	Name       string   `json:"name"`
	Email      string   `json:"email,omitempty"`
	Specialty  string   `json:"specialty,omitempty"`
	Experience string   `json:"experience,omitempty"`
	Rating     int      `json:"rating"`
	City       string   `json:"city,omitempty"`
	Languages  []string `json:"languages,omitempty"`
}

func toTranslatorView(translator *domain.Translator) translatorView {
	view := translatorView{
		ID:         translator.ID,
		UserID:     translator.UserID,
		Name:       translator.Name,
		Email:      translator.Email,
		Specialty:  translator.Specialty,
		Experience: translator.Experience,
		Rating:     translator.Rating,
	}
	if translator.City != nil {
		view.City = translator.City.Name
	}
	for _, language := range translator.Languages {
		view.Languages = append(view.Languages, language.Name)
	}
	return view
}

type invoiceView struct {
	ID                       string     `json:"id"`
	RequestID                string     `json:"request_id"`
	TranslatorID             *string    `json:"translator_id,omitempty"`
	Amount                   string     `json:"amount"`
	IssueDate                time.Time  `json:"issue_date"`
	Status                   string     `json:"status"`
	TransactionID            *string    `json:"transaction_id,omitempty"`
	CompanyPaymentDate       *time.Time `json:"company_payment_date,omitempty"`
	TransferConfirmationDate *time.Time `json:"transfer_confirmation_date,omitempty"`
}

func toInvoiceView(invoice *domain.Invoice) invoiceView {
	return invoiceView{
		ID:                       invoice.ID,
		RequestID:                invoice.RequestID,
		TranslatorID:             invoice.TranslatorID,
		Amount:                   invoice.Amount.StringFixed(2),
		IssueDate:                invoice.IssueDate,
		Status:                   string(invoice.Status),
		TransactionID:            invoice.TransactionID,
		CompanyPaymentDate:       invoice.CompanyPaymentDate,
		TransferConfirmationDate: invoice.TransferConfirmationDate,
	}
}

type reviewView struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	TranslatorID string    `json:"translator_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func toReviewView(review *domain.Review) reviewView {
	return reviewView{
		ID:           review.ID,
		UserID:       review.UserID,
		TranslatorID: review.TranslatorID,
		Rating:       review.Rating,
		Comment:      review.Comment,
		CreatedAt:    review.CreatedAt,
	}
}
