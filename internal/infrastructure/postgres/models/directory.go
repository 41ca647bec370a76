package models

type CountryModel struct {
	ID   string `gorm:"primaryKey;type:uuid"`
	Name string `gorm:"uniqueIndex;size:200"`
}

type CityModel struct {
	ID        string       `gorm:"primaryKey;type:uuid"`
	Name      string       `gorm:"uniqueIndex;size:200"`
	CountryID string       `gorm:"type:uuid"`
	Country   CountryModel `gorm:"foreignKey:CountryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

type LanguageModel struct {
	ID   string `gorm:"primaryKey;type:uuid"`
	Name string `gorm:"uniqueIndex;size:50"`
}
