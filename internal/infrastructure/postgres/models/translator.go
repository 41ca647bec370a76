package models

import "time"

type TranslatorModel struct {
	ID         string          `gorm:"primaryKey;type:uuid"`
	UserID     string          `gorm:"index:idx_translator_user"`
	Email      string
	Name       string
	Specialty  string          `gorm:"size:200;index:idx_specialty"`
	Experience string          `gorm:"type:text"`
	Rating     int16
	CityID     *string         `gorm:"type:uuid"`
	City       *CityModel      `gorm:"foreignKey:CityID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Languages  []LanguageModel `gorm:"many2many:translator_languages;constraint:OnDelete:CASCADE;"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ReviewModel struct {
	ID           string          `gorm:"primaryKey;type:uuid"`
	UserID       string
	Rating       int16
	Comment      string          `gorm:"type:text"`
	TranslatorID string          `gorm:"type:uuid;index:idx_review_translator"`
	Translator   TranslatorModel `gorm:"foreignKey:TranslatorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt    time.Time
}
