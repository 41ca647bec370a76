package mailer

import (
	"fmt"

	"github.com/translationbridge/request-service/internal/domain"
)

// Message builders for the lifecycle notifications. Bodies are plain
// text; rendering stays out of the delivery transport.

func InterestMessage(request *domain.TranslationRequest, translator *domain.Translator, assignmentLink string) (subject, body string) {
	subject = fmt.Sprintf("Translator Interest in Your Request #%s", request.ID)
	body = fmt.Sprintf(
		"Dear %s,\n\n"+
			"The translator %s (Email: %s) has shown interest in your translation request: %s.\n\n"+
			"To proceed and officially assign this translator and issue the invoice, please click the link below:\n\n"+
			"%s\n\n"+
			"The Platform Team",
		request.CompanyName, translator.Name, translator.Email, request.CompanyName, assignmentLink,
	)
	return subject, body
}

func InvoiceIssuedMessage(request *domain.TranslationRequest, translator *domain.Translator, invoice *domain.Invoice) (subject, body string) {
	subject = fmt.Sprintf("New Invoice Issued for Request #%s", request.ID)
	body = fmt.Sprintf(
		"Dear %s,\n\n"+
			"A new invoice (ID: %s) has been issued for the request '%s'. "+
			"Please check the platform for details and payment confirmation.\n\n"+
			"Thank you.",
		translator.Name, invoice.ID, request.CompanyName,
	)
	return subject, body
}

func TransferConfirmedMessage(request *domain.TranslationRequest, translator *domain.Translator, invoice *domain.Invoice) (subject, body string) {
	subject = fmt.Sprintf("Payment Transfer Confirmed for Request #%s", request.ID)
	body = fmt.Sprintf(
		"Dear %s,\n\n"+
			"The company %s confirms that the payment of %s has been transferred for translation request #%s.\n"+
			"Please check your bank account to verify the funds.\n\n"+
			"Thank you for using the platform.",
		translator.Name, request.CompanyName, invoice.Amount.StringFixed(2), request.ID,
	)
	return subject, body
}
