package request

import "github.com/translationbridge/request-service/internal/domain"

type RequestOutput struct {
	Request *domain.TranslationRequest
}

// ExpressInterestOutput carries a non-empty Warning when the interest
// email could not be delivered; nothing else changes in that case.
type ExpressInterestOutput struct {
	Request    *domain.TranslationRequest
	Translator *domain.Translator
	Warning    string
}

// AssignOutput is the committed assignment plus its invoice. Warning
// is set when the post-commit notification failed.
type AssignOutput struct {
	Request *domain.TranslationRequest
	Invoice *domain.Invoice
	Warning string
}
