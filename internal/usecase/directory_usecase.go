package usecase

import "github.com/translationbridge/request-service/internal/domain"

type DirectoryUsecase interface {
	ListCountries() ([]*domain.Country, error)
	ListCities() ([]*domain.City, error)
	ListLanguages() ([]*domain.Language, error)
}

type DefaultDirectoryUsecase struct {
	DirectoryRepo domain.DirectoryRepository
}

func NewDefaultDirectoryUsecase(directoryRepo domain.DirectoryRepository) *DefaultDirectoryUsecase {
	return &DefaultDirectoryUsecase{DirectoryRepo: directoryRepo}
}

func (uc *DefaultDirectoryUsecase) ListCountries() ([]*domain.Country, error) {
	return uc.DirectoryRepo.ListCountries()
}

func (uc *DefaultDirectoryUsecase) ListCities() ([]*domain.City, error) {
	return uc.DirectoryRepo.ListCities()
}

func (uc *DefaultDirectoryUsecase) ListLanguages() ([]*domain.Language, error) {
	return uc.DirectoryRepo.ListLanguages()
}
