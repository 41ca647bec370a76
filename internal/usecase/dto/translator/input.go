package translator

import "github.com/translationbridge/request-service/internal/domain"

type CreateTranslatorInput struct {
	Actor      domain.Actor
	Name       string
	Email      string
	Specialty  string
	Experience string
	Rating     int
	CityID     *string
	Languages  []string
}

type UpdateTranslatorInput struct {
	TranslatorID string
	Name         string
	Email        string
	Specialty    string
	Experience   string
	Rating       int
	CityID       *string
	Languages    []string
}

type AddReviewInput struct {
	Actor        domain.Actor
	TranslatorID string
	Rating       int
	Comment      string
}
