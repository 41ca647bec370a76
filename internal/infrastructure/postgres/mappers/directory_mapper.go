package mappers

import (
	"github.com/translationbridge/request-service/internal/domain"
	"github.com/translationbridge/request-service/internal/infrastructure/postgres/models"
)

func ToDomainCountry(model *models.CountryModel) *domain.Country {
	return &domain.Country{
		ID:   model.ID,
		Name: model.Name,
	}
}

func ToDomainCity(model *models.CityModel) *domain.City {
	return &domain.City{
		ID:        model.ID,
		Name:      model.Name,
		CountryID: model.CountryID,
	}
}

func ToDomainLanguage(model *models.LanguageModel) domain.Language {
	return domain.Language{
		ID:   model.ID,
		Name: model.Name,
	}
}

func ToGORMLanguage(language domain.Language) models.LanguageModel {
	return models.LanguageModel{
		ID:   language.ID,
		Name: language.Name,
	}
}
