package invoice

import "github.com/translationbridge/request-service/internal/domain"

// ConfirmTransferOutput is the committed transfer confirmation.
// Warning is set when the post-commit notification failed; the state
// change stands regardless.
type ConfirmTransferOutput struct {
	Invoice *domain.Invoice
	Warning string
}
