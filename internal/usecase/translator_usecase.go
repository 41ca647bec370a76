package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/translationbridge/request-service/internal/domain"
	translatordto "github.com/translationbridge/request-service/internal/usecase/dto/translator"
)

type TranslatorUsecase interface {
	CreateTranslator(input *translatordto.CreateTranslatorInput) (*domain.Translator, error)
	GetTranslatorByID(translatorID string) (*domain.Translator, error)
	ListTranslators() ([]*domain.Translator, error)
	UpdateTranslator(input *translatordto.UpdateTranslatorInput) (*domain.Translator, error)
	DeleteTranslator(translatorID string) error
	AddReview(input *translatordto.AddReviewInput) (*domain.Review, error)
	ListReviews(translatorID string) ([]*domain.Review, error)
}

type DefaultTranslatorUsecase struct {
	TranslatorRepo domain.TranslatorRepository
	DirectoryRepo  domain.DirectoryRepository
}

func NewDefaultTranslatorUsecase(
	translatorRepo domain.TranslatorRepository,
	directoryRepo domain.DirectoryRepository) *DefaultTranslatorUsecase {

	return &DefaultTranslatorUsecase{
		TranslatorRepo: translatorRepo,
		DirectoryRepo:  directoryRepo,
	}
}

func (uc *DefaultTranslatorUsecase) CreateTranslator(input *translatordto.CreateTranslatorInput) (*domain.Translator, error) {
	if !input.Actor.Authenticated {
		return nil, domain.ErrUnauthorized
	}
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, domain.NewValidationError("name", "must not be empty")
	}

	languages, err := uc.DirectoryRepo.GetLanguagesByNames(input.Languages)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	translator := &domain.Translator{
		ID:         uuid.NewString(),
		UserID:     input.Actor.UserID,
		Email:      input.Email,
		Name:       input.Name,
		Specialty:  input.Specialty,
		Experience: input.Experience,
		Rating:     input.Rating,
		CityID:     input.CityID,
		Languages:  languages,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.TranslatorRepo.CreateTranslator(translator); err != nil {
		return nil, err
	}
	return translator, nil
}

func (uc *DefaultTranslatorUsecase) GetTranslatorByID(translatorID string) (*domain.Translator, error) {
	return uc.TranslatorRepo.GetTranslatorByID(translatorID)
}

func (uc *DefaultTranslatorUsecase) ListTranslators() ([]*domain.Translator, error) {
	return uc.TranslatorRepo.ListTranslators()
}

func (uc *DefaultTranslatorUsecase) UpdateTranslator(input *translatordto.UpdateTranslatorInput) (*domain.Translator, error) {
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}

	translator, err := uc.TranslatorRepo.GetTranslatorByID(input.TranslatorID)
	if err != nil {
		return nil, err
	}

	languages, err := uc.DirectoryRepo.GetLanguagesByNames(input.Languages)
	if err != nil {
		return nil, err
	}

	translator.Name = input.Name
	translator.Email = input.Email
	translator.Specialty = input.Specialty
	translator.Experience = input.Experience
	translator.Rating = input.Rating
	translator.CityID = input.CityID
	translator.Languages = languages
	translator.UpdatedAt = time.Now()

	if err := uc.TranslatorRepo.UpdateTranslator(translator); err != nil {
		return nil, err
	}
	return translator, nil
}

// DeleteTranslator hard-deletes the profile. Reviews cascade; invoices
// keep their status with the translator reference nulled out.
func (uc *DefaultTranslatorUsecase) DeleteTranslator(translatorID string) error {
	return uc.TranslatorRepo.DeleteTranslator(translatorID)
}

func (uc *DefaultTranslatorUsecase) AddReview(input *translatordto.AddReviewInput) (*domain.Review, error) {
	if !input.Actor.Authenticated {
		return nil, domain.ErrUnauthorized
	}
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}

	// Reviews require an existing translator.
	if _, err := uc.TranslatorRepo.GetTranslatorByID(input.TranslatorID); err != nil {
		return nil, err
	}

	review := &domain.Review{
		ID:           uuid.NewString(),
		UserID:       input.Actor.UserID,
		TranslatorID: input.TranslatorID,
		Rating:       input.Rating,
		Comment:      input.Comment,
		CreatedAt:    time.Now(),
	}
	if err := uc.TranslatorRepo.CreateReview(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (uc *DefaultTranslatorUsecase) ListReviews(translatorID string) ([]*domain.Review, error) {
	return uc.TranslatorRepo.ListReviews(translatorID)
}

func validateRating(rating int) error {
	if rating < domain.MinRating || rating > domain.MaxRating {
		return domain.NewValidationError("rating", "must be between 1 and 5")
	}
	return nil
}
