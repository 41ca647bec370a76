package mappers

import (
	"github.com/translationbridge/request-service/internal/domain"
	"github.com/translationbridge/request-service/internal/infrastructure/postgres/models"
)

func ToDomainTranslator(model *models.TranslatorModel) *domain.Translator {
	translator := &domain.Translator{
		ID:         model.ID,
		UserID:     model.UserID,
		Email:      model.Email,
		Name:       model.Name,
		Specialty:  model.Specialty,
		Experience: model.Experience,
		Rating:     int(model.Rating),
		CityID:     model.CityID,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
	if model.City != nil {
		translator.City = ToDomainCity(model.City)
	}
	for _, language := range model.Languages {
		translator.Languages = append(translator.Languages, ToDomainLanguage(&language))
	}
	return translator
}

func ToGORMTranslator(translator *domain.Translator) *models.TranslatorModel {
	model := &models.TranslatorModel{
		ID:         translator.ID,
		UserID:     translator.UserID,
		Email:      translator.Email,
		Name:       translator.Name,
		Specialty:  translator.Specialty,
		Experience: translator.Experience,
		Rating:     int16(translator.Rating),
		CityID:     translator.CityID,
		CreatedAt:  translator.CreatedAt,
		UpdatedAt:  translator.UpdatedAt,
	}
	for _, language := range translator.Languages {
		model.Languages = append(model.Languages, ToGORMLanguage(language))
	}
	return model
}

func ToDomainReview(model *models.ReviewModel) *domain.Review {
	return &domain.Review{
		ID:           model.ID,
		UserID:       model.UserID,
		TranslatorID: model.TranslatorID,
		Rating:       int(model.Rating),
		Comment:      model.Comment,
		CreatedAt:    model.CreatedAt,
	}
}

func ToGORMReview(review *domain.Review) *models.ReviewModel {
	return &models.ReviewModel{
		ID:           review.ID,
		UserID:       review.UserID,
		TranslatorID: review.TranslatorID,
		Rating:       int16(review.Rating),
		Comment:      review.Comment,
		CreatedAt:    review.CreatedAt,
	}
}
