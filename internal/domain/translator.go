package domain

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Translator is a registered translator profile, owned 1:1 by a user
// identity.
type Translator struct {
	ID         string
	UserID     string
	Email      string
	Name       string
	Specialty  string
	Experience string
	Rating     int
	CityID     *string
	City       *City
	Languages  []Language
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Review is a user's rating and comment on a translator. Reviews are
// removed together with their translator.
type Review struct {
	ID           string
	UserID       string
	TranslatorID string
	Rating       int
	Comment      string
	CreatedAt    time.Time
}

type TranslatorRepository interface {
	CreateTranslator(translator *Translator) error
	GetTranslatorByID(translatorID string) (*Translator, error)
	GetTranslatorByUserID(userID string) (*Translator, error)
	ListTranslators() ([]*Translator, error)
	UpdateTranslator(translator *Translator) error
	// DeleteTranslator hard-deletes the profile: reviews cascade,
	// invoice and request references are set to null.
	DeleteTranslator(translatorID string) error
	CreateReview(review *Review) error
	ListReviews(translatorID string) ([]*Review, error)
}
