package kafka

type RequestEvent struct {
	RequestID    string `json:"request_id"`
	CompanyID    string `json:"company_id"`
	TranslatorID string `json:"translator_id,omitempty"`
	InvoiceID    string `json:"invoice_id,omitempty"`
	Status       string `json:"status"`
	Amount       string `json:"amount,omitempty"`
}
