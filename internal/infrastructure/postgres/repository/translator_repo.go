package repository

import (
	"errors"
	"fmt"

	"github.com/translationbridge/request-service/internal/domain"
	"github.com/translationbridge/request-service/internal/infrastructure/postgres/mappers"
	"github.com/translationbridge/request-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTranslatorRepository struct {
	DB *gorm.DB
}

func NewDefaultTranslatorRepository(db *gorm.DB) *DefaultTranslatorRepository {
	return &DefaultTranslatorRepository{DB: db}
}

func (r *DefaultTranslatorRepository) CreateTranslator(translator *domain.Translator) error {
	translatorModel := mappers.ToGORMTranslator(translator)
	// Languages are directory rows: associate, never upsert them.
	if err := r.DB.Omit("Languages.*").Create(translatorModel).Error; err != nil {
		return fmt.Errorf("failed to create translator: %w", err)
	}
	return nil
}

func (r *DefaultTranslatorRepository) GetTranslatorByID(translatorID string) (*domain.Translator, error) {
	var translatorModel models.TranslatorModel
	err := r.DB.
		Preload("City").
		Preload("Languages").
		First(&translatorModel, "id = ?", translatorID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find translator: %w", err)
	}
	return mappers.ToDomainTranslator(&translatorModel), nil
}

func (r *DefaultTranslatorRepository) GetTranslatorByUserID(userID string) (*domain.Translator, error) {
	var translatorModel models.TranslatorModel
	err := r.DB.
		Preload("City").
		Preload("Languages").
		First(&translatorModel, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find translator by user: %w", err)
	}
	return mappers.ToDomainTranslator(&translatorModel), nil
}

func (r *DefaultTranslatorRepository) ListTranslators() ([]*domain.Translator, error) {
	var translatorModels []models.TranslatorModel
	err := r.DB.
		Preload("City").
		Preload("Languages").
		Find(&translatorModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list translators: %w", err)
	}
	translators := make([]*domain.Translator, len(translatorModels))
	for i, translatorModel := range translatorModels {
		translators[i] = mappers.ToDomainTranslator(&translatorModel)
	}
	return translators, nil
}

// UpdateTranslator replaces every mutable column plus the language
// set. Columns go through a map so cleared fields stay in the UPDATE
// instead of being skipped as zero values.
func (r *DefaultTranslatorRepository) UpdateTranslator(translator *domain.Translator) error {
	translatorModel := mappers.ToGORMTranslator(translator)
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.TranslatorModel{}).
			Where("id = ?", translator.ID).
			Updates(map[string]interface{}{
				"name":       translator.Name,
				"email":      translator.Email,
				"specialty":  translator.Specialty,
				"experience": translator.Experience,
				"rating":     translator.Rating,
				"city_id":    translator.CityID,
				"updated_at": translator.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return tx.Model(&models.TranslatorModel{ID: translator.ID}).
			Association("Languages").
			Replace(translatorModel.Languages)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to update translator: %w", err)
	}
	return nil
}

func (r *DefaultTranslatorRepository) DeleteTranslator(translatorID string) error {
	result := r.DB.Select("Languages").Delete(&models.TranslatorModel{ID: translatorID})
	if result.Error != nil {
		return fmt.Errorf("failed to delete translator: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DefaultTranslatorRepository) CreateReview(review *domain.Review) error {
	reviewModel := mappers.ToGORMReview(review)
	if err := r.DB.Create(reviewModel).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (r *DefaultTranslatorRepository) ListReviews(translatorID string) ([]*domain.Review, error) {
	var reviewModels []models.ReviewModel
	err := r.DB.
		Where("translator_id = ?", translatorID).
		Order("created_at DESC").
		Find(&reviewModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	reviews := make([]*domain.Review, len(reviewModels))
	for i, reviewModel := range reviewModels {
		reviews[i] = mappers.ToDomainReview(&reviewModel)
	}
	return reviews, nil
}
