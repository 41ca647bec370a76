package mailer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/translationbridge/request-service/internal/domain"
)

func testRequest() *domain.TranslationRequest {
	return &domain.TranslationRequest{
		ID:          "r-1",
		CompanyName: "Acme Corp",
	}
}

func testTranslator() *domain.Translator {
	return &domain.Translator{
		ID:    "t-1",
		Name:  "Jean",
		Email: "translator@test.lt",
	}
}

func TestInterestMessage(t *testing.T) {
	subject, body := InterestMessage(testRequest(), testTranslator(),
		"https://platform.test/payment/issue-invoice/r-1/t-1")

	assert.Equal(t, "Translator Interest in Your Request #r-1", subject)
	assert.Contains(t, body, "Dear Acme Corp")
	assert.Contains(t, body, "Jean (Email: translator@test.lt)")
	assert.Contains(t, body, "https://platform.test/payment/issue-invoice/r-1/t-1")
}

func TestInvoiceIssuedMessage(t *testing.T) {
	invoice := &domain.Invoice{ID: "inv-1", Amount: decimal.NewFromInt(100)}

	subject, body := InvoiceIssuedMessage(testRequest(), testTranslator(), invoice)

	assert.Equal(t, "New Invoice Issued for Request #r-1", subject)
	assert.Contains(t, body, "Dear Jean")
	assert.Contains(t, body, "invoice (ID: inv-1)")
}

func TestTransferConfirmedMessage(t *testing.T) {
	invoice := &domain.Invoice{ID: "inv-1", Amount: decimal.RequireFromString("123.5")}

	subject, body := TransferConfirmedMessage(testRequest(), testTranslator(), invoice)

	assert.Equal(t, "Payment Transfer Confirmed for Request #r-1", subject)
	assert.Contains(t, body, "the payment of 123.50")
	assert.Contains(t, body, "request #r-1")
}
