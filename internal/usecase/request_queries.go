package usecase

import "github.com/translationbridge/request-service/internal/domain"

func (uc *DefaultRequestUsecase) GetRequestByID(requestID string) (*domain.TranslationRequest, error) {
	return uc.RequestRepo.GetRequestByID(requestID)
}

func (uc *DefaultRequestUsecase) ListRequests(requestType string) ([]*domain.TranslationRequest, error) {
	return uc.RequestRepo.ListRequests(requestType)
}

// MatchRequest filters the translator pool by the request's stated
// city, language and specialty; empty fields act as wildcards.
func (uc *DefaultRequestUsecase) MatchRequest(requestID string) ([]*domain.Translator, error) {
	request, err := uc.RequestRepo.GetRequestByID(requestID)
	if err != nil {
		return nil, err
	}

	translators, err := uc.TranslatorRepo.ListTranslators()
	if err != nil {
		return nil, err
	}

	filter := domain.MatchFilter{
		City:      request.City,
		Language:  request.Language,
		Specialty: request.Specialty,
	}
	return domain.MatchTranslators(translators, filter), nil
}
