package repository

import (
	"fmt"

	"github.com/translationbridge/request-service/internal/domain"
	"github.com/translationbridge/request-service/internal/infrastructure/postgres/mappers"
	"github.com/translationbridge/request-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultDirectoryRepository struct {
	DB *gorm.DB
}

func NewDefaultDirectoryRepository(db *gorm.DB) *DefaultDirectoryRepository {
	return &DefaultDirectoryRepository{DB: db}
}

func (r *DefaultDirectoryRepository) ListCountries() ([]*domain.Country, error) {
	var countryModels []models.CountryModel
	if err := r.DB.Order("name").Find(&countryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	countries := make([]*domain.Country, len(countryModels))
	for i, countryModel := range countryModels {
		countries[i] = mappers.ToDomainCountry(&countryModel)
	}
	return countries, nil
}

func (r *DefaultDirectoryRepository) ListCities() ([]*domain.City, error) {
	var cityModels []models.CityModel
	if err := r.DB.Order("name").Find(&cityModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	cities := make([]*domain.City, len(cityModels))
	for i, cityModel := range cityModels {
		cities[i] = mappers.ToDomainCity(&cityModel)
	}
	return cities, nil
}

func (r *DefaultDirectoryRepository) ListLanguages() ([]*domain.Language, error) {
	var languageModels []models.LanguageModel
	if err := r.DB.Order("name").Find(&languageModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list languages: %w", err)
	}
	languages := make([]*domain.Language, len(languageModels))
	for i, languageModel := range languageModels {
		language := mappers.ToDomainLanguage(&languageModel)
		languages[i] = &language
	}
	return languages, nil
}

// GetLanguagesByNames resolves language names against the directory.
// Every submitted name must exist; an unknown one is a validation
// error rather than a silently shrunken language set.
func (r *DefaultDirectoryRepository) GetLanguagesByNames(names []string) ([]domain.Language, error) {
	if len(names) == 0 {
		return nil, nil
	}
	unique := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			unique = append(unique, name)
		}
	}
	var languageModels []models.LanguageModel
	if err := r.DB.Where("name IN ?", unique).Find(&languageModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find languages: %w", err)
	}
	if len(languageModels) != len(unique) {
		known := make(map[string]bool, len(languageModels))
		for _, languageModel := range languageModels {
			known[languageModel.Name] = true
		}
		for _, name := range unique {
			if !known[name] {
				return nil, domain.NewValidationError("languages", "unknown language: "+name)
			}
		}
	}
	languages := make([]domain.Language, len(languageModels))
	for i, languageModel := range languageModels {
		languages[i] = mappers.ToDomainLanguage(&languageModel)
	}
	return languages, nil
}
