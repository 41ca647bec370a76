package usecase

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/translationbridge/request-service/internal/domain"
	"github.com/translationbridge/request-service/internal/infrastructure/mailer"
	requestdto "github.com/translationbridge/request-service/internal/usecase/dto/request"
)

// ExpressInterest emails the owning company an assignment link for the
// acting translator. It is purely a notification trigger: no request
// state changes here, and a failed send is reported as a warning.
func (uc *DefaultRequestUsecase) ExpressInterest(input *requestdto.ExpressInterestInput) (*requestdto.ExpressInterestOutput, error) {
	if !input.Actor.Authenticated {
		return nil, domain.ErrUnauthorized
	}

	// The actor must own a translator profile.
	translator, err := uc.TranslatorRepo.GetTranslatorByUserID(input.Actor.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("account has no translator profile: %w", domain.ErrUnauthorized)
		}
		return nil, err
	}

	request, err := uc.RequestRepo.GetRequestByID(input.RequestID)
	if err != nil {
		return nil, err
	}

	assignmentLink := fmt.Sprintf("%s/payment/issue-invoice/%s/%s", uc.PlatformURL, request.ID, translator.ID)

	output := &requestdto.ExpressInterestOutput{Request: request, Translator: translator}
	subject, body := mailer.InterestMessage(request, translator, assignmentLink)
	if err := uc.Notifier.Send(request.CompanyEmail, subject, body); err != nil {
		log.Warn().Err(err).Str("request_id", request.ID).Msg("interest notification failed")
		uc.recordNotifyFailure("interest")
		output.Warning = "your interest was recorded, but the email to the company could not be sent"
	}

	return output, nil
}
