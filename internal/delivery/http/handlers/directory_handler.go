package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type namedView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func listCountries(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		countries, err := data.Directory.ListCountries()
		if err != nil {
			return toHTTPError(err)
		}
		views := make([]namedView, len(countries))
		for i, country := range countries {
			views[i] = namedView{ID: country.ID, Name: country.Name}
		}
		return c.JSON(http.StatusOK, views)
	}
}

func listCities(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		cities, err := data.Directory.ListCities()
		if err != nil {
			return toHTTPError(err)
		}
		views := make([]namedView, len(cities))
		for i, city := range cities {
			views[i] = namedView{ID: city.ID, Name: city.Name}
		}
		return c.JSON(http.StatusOK, views)
	}
}

func listLanguages(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		languages, err := data.Directory.ListLanguages()
		if err != nil {
			return toHTTPError(err)
		}
		views := make([]namedView, len(languages))
		for i, language := range languages {
			views[i] = namedView{ID: language.ID, Name: language.Name}
		}
		return c.JSON(http.StatusOK, views)
	}
}
