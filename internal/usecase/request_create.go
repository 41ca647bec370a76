package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/translationbridge/request-service/internal/domain"
	requestdto "github.com/translationbridge/request-service/internal/usecase/dto/request"
)

func (uc *DefaultRequestUsecase) CreateRequest(input *requestdto.CreateRequestInput) (*requestdto.RequestOutput, error) {
	if !input.Actor.Authenticated {
		return nil, domain.ErrUnauthorized
	}
	if err := validateRequestFields(input.CompanyName, input.RequestType); err != nil {
		return nil, err
	}

	now := time.Now()
	request := &domain.TranslationRequest{
		ID:           uuid.NewString(),
		CompanyID:    input.Actor.UserID,
		CompanyEmail: input.Actor.Email,
		CompanyName:  input.CompanyName,
		RequestType:  input.RequestType,
		City:         input.City,
		Language:     input.Language,
		Specialty:    input.Specialty,
		Location:     input.Location,
		Cost:         input.Cost,
		Status:       domain.RequestPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.RequestRepo.CreateRequest(request); err != nil {
		return nil, err
	}

	uc.recordRequestCreated(request)
	uc.publishEvent(RequestEventCreated(request))

	return &requestdto.RequestOutput{Request: request}, nil
}

func (uc *DefaultRequestUsecase) UpdateRequest(input *requestdto.UpdateRequestInput) (*requestdto.RequestOutput, error) {
	if err := validateRequestFields(input.CompanyName, input.RequestType); err != nil {
		return nil, err
	}

	request, err := uc.RequestRepo.GetRequestByID(input.RequestID)
	if err != nil {
		return nil, err
	}

	request.CompanyName = input.CompanyName
	request.RequestType = input.RequestType
	request.City = input.City
	request.Language = input.Language
	request.Specialty = input.Specialty
	request.Location = input.Location
	request.Cost = input.Cost
	request.UpdatedAt = time.Now()

	if err := uc.RequestRepo.UpdateRequest(request); err != nil {
		return nil, err
	}

	return &requestdto.RequestOutput{Request: request}, nil
}

func validateRequestFields(companyName, requestType string) error {
	if companyName == "" {
		return domain.NewValidationError("company_name", "must not be empty")
	}
	if requestType == "" {
		return domain.NewValidationError("request_type", "must not be empty")
	}
	return nil
}
