package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	translatordto "github.com/translationbridge/request-service/internal/usecase/dto/translator"
)

type translatorBody struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Specialty  string   `json:"specialty"`
	Experience string   `json:"experience"`
	Rating     int      `json:"rating"`
	CityID     *string  `json:"city_id"`
	Languages  []string `json:"languages"`
}

func createTranslator(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		var body translatorBody
		if err := c.Bind(&body); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
		translator, err := data.Translators.CreateTranslator(&translatordto.CreateTranslatorInput{
			Actor:      actorFromRequest(c),
			Name:       body.Name,
			Email:      body.Email,
			Specialty:  body.Specialty,
			Experience: body.Experience,
			Rating:     body.Rating,
			CityID:     body.CityID,
			Languages:  body.Languages,
		})
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(http.StatusCreated, toTranslatorView(translator))
	}
}

func listTranslators(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		translators, err := data.Translators.ListTranslators()
		if err != nil {
			return toHTTPError(err)
		}
		views := make([]translatorView, len(translators))
		for i, translator := range translators {
			views[i] = toTranslatorView(translator)
		}
		return c.JSON(http.StatusOK, views)
	}
}

func getTranslator(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		translator, err := data.Translators.GetTranslatorByID(c.Param("id"))
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(http.StatusOK, toTranslatorView(translator))
	}
}

func updateTranslator(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		var body translatorBody
		if err := c.Bind(&body); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
		translator, err := data.Translators.UpdateTranslator(&translatordto.UpdateTranslatorInput{
			TranslatorID: c.Param("id"),
			Name:         body.Name,
			Email:        body.Email,
			Specialty:    body.Specialty,
			Experience:   body.Experience,
			Rating:       body.Rating,
			CityID:       body.CityID,
			Languages:    body.Languages,
		})
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(http.StatusOK, toTranslatorView(translator))
	}
}

func deleteTranslator(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		if err := data.Translators.DeleteTranslator(c.Param("id")); err != nil {
			return toHTTPError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

type reviewBody struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func addReview(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		var body reviewBody
		if err := c.Bind(&body); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
		review, err := data.Translators.AddReview(&translatordto.AddReviewInput{
			Actor:        actorFromRequest(c),
			TranslatorID: c.Param("id"),
			Rating:       body.Rating,
			Comment:      body.Comment,
		})
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(http.StatusCreated, toReviewView(review))
	}
}

func listReviews(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		reviews, err := data.Translators.ListReviews(c.Param("id"))
		if err != nil {
			return toHTTPError(err)
		}
		views := make([]reviewView, len(reviews))
		for i, review := range reviews {
			views[i] = toReviewView(review)
		}
		return c.JSON(http.StatusOK, views)
	}
}
