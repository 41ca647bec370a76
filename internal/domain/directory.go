package domain

// Reference vocabularies used for filtering and matching.

type Country struct {
	ID   string
	Name string
}

// City belongs to a country; deleting the country removes its cities.
type City struct {
	ID        string
	Name      string
	CountryID string
	Country   *Country
}

type Language struct {
	ID   string
	Name string
}

type DirectoryRepository interface {
	ListCountries() ([]*Country, error)
	ListCities() ([]*City, error)
	ListLanguages() ([]*Language, error)
	GetLanguagesByNames(names []string) ([]Language, error)
}
