package repository

import (
	"errors"
	"fmt"

	"github.com/translationbridge/request-service/internal/domain"
	"github.com/translationbridge/request-service/internal/infrastructure/postgres/mappers"
	"github.com/translationbridge/request-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultRequestRepository struct {
	DB *gorm.DB
}

func NewDefaultRequestRepository(db *gorm.DB) *DefaultRequestRepository {
	return &DefaultRequestRepository{DB: db}
}

func (r *DefaultRequestRepository) CreateRequest(request *domain.TranslationRequest) error {
	requestModel := mappers.ToGORMRequest(request)
	if err := r.DB.Create(requestModel).Error; err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return nil
}

func (r *DefaultRequestRepository) GetRequestByID(requestID string) (*domain.TranslationRequest, error) {
	var requestModel models.RequestModel
	err := r.DB.
		Preload("Translator").
		Preload("Translator.City").
		Preload("Translator.Languages").
		First(&requestModel, "id = ?", requestID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find request: %w", err)
	}
	return mappers.ToDomainRequest(&requestModel), nil
}

func (r *DefaultRequestRepository) ListRequests(requestType string) ([]*domain.TranslationRequest, error) {
	query := r.DB.Preload("Translator").Order("created_at DESC")
	if requestType != "" {
		query = query.Where("request_type = ?", requestType)
	}
	var requestModels []models.RequestModel
	if err := query.Find(&requestModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	requests := make([]*domain.TranslationRequest, len(requestModels))
	for i, requestModel := range requestModels {
		requests[i] = mappers.ToDomainRequest(&requestModel)
	}
	return requests, nil
}

// UpdateRequest replaces every mutable column. The column map keeps
// cleared fields in the UPDATE; a struct update would skip zero values
// and silently keep the old ones.
func (r *DefaultRequestRepository) UpdateRequest(request *domain.TranslationRequest) error {
	result := r.DB.Model(&models.RequestModel{}).
		Where("id = ?", request.ID).
		Updates(map[string]interface{}{
			"company_name": request.CompanyName,
			"request_type": request.RequestType,
			"city":         request.City,
			"language":     request.Language,
			"specialty":    request.Specialty,
			"location":     request.Location,
			"cost":         request.Cost,
			"updated_at":   request.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DefaultRequestRepository) DeleteRequest(requestID string) error {
	result := r.DB.Delete(&models.RequestModel{}, "id = ?", requestID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AssignTranslator runs the request mutation and the invoice insert as
// one transaction. The unique index on invoices.request_id aborts the
// whole unit when an invoice already exists, so a losing concurrent
// caller gets ErrConflict and leaves no partial state behind.
func (r *DefaultRequestRepository) AssignTranslator(requestID, translatorID string, invoice *domain.Invoice) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.RequestModel{}).
			Where("id = ?", requestID).
			Updates(map[string]interface{}{
				"translator_id": translatorID,
				"status":        domain.RequestAssigned,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return tx.Create(mappers.ToGORMInvoice(invoice)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrConflict
		}
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to assign translator: %w", err)
	}
	return nil
}
