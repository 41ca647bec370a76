package mappers

import (
	"github.com/translationbridge/request-service/internal/domain"
	"github.com/translationbridge/request-service/internal/infrastructure/postgres/models"
)

func ToDomainRequest(model *models.RequestModel) *domain.TranslationRequest {
	request := &domain.TranslationRequest{
		ID:           model.ID,
		CompanyID:    model.CompanyID,
		CompanyEmail: model.CompanyEmail,
		CompanyName:  model.CompanyName,
		RequestType:  model.RequestType,
		City:         model.City,
		Language:     model.Language,
		Specialty:    model.Specialty,
		Location:     model.Location,
		Cost:         model.Cost,
		Status:       model.Status,
		TranslatorID: model.TranslatorID,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
	if model.Translator != nil {
		request.Translator = ToDomainTranslator(model.Translator)
	}
	return request
}

func ToGORMRequest(request *domain.TranslationRequest) *models.RequestModel {
	return &models.RequestModel{
		ID:           request.ID,
		CompanyID:    request.CompanyID,
		CompanyEmail: request.CompanyEmail,
		CompanyName:  request.CompanyName,
		RequestType:  request.RequestType,
		City:         request.City,
		Language:     request.Language,
		Specialty:    request.Specialty,
		Location:     request.Location,
		Cost:         request.Cost,
		Status:       request.Status,
		TranslatorID: request.TranslatorID,
		CreatedAt:    request.CreatedAt,
		UpdatedAt:    request.UpdatedAt,
	}
}
