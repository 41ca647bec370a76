package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	requestdto "github.com/translationbridge/request-service/internal/usecase/dto/request"
)

type requestBody struct {
	CompanyName string           `json:"company_name"`
	RequestType string           `json:"request_type"`
	City        string           `json:"city"`
	Language    string           `json:"language"`
	Specialty   string           `json:"specialty"`
	Location    string           `json:"location"`
	Cost        *decimal.Decimal `json:"cost"`
}

func createRequest(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		var body requestBody
		if err := c.Bind(&body); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
		output, err := data.Requests.CreateRequest(&requestdto.CreateRequestInput{
			Actor:       actorFromRequest(c),
			CompanyName: body.CompanyName,
			RequestType: body.RequestType,
			City:        body.City,
			Language:    body.Language,
			Specialty:   body.Specialty,
			Location:    body.Location,
			Cost:        body.Cost,
		})
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(http.StatusCreated, toRequestView(output.Request))
	}
}

func listRequests(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		if !actorFromRequest(c).Authenticated {
			return echo.NewHTTPError(http.StatusForbidden, "must be logged in to view requests")
		}
		requests, err := data.Requests.ListRequests(c.QueryParam("type"))
		if err != nil {
			return toHTTPError(err)
		}
		views := make([]requestView, len(requests))
		for i, request := range requests {
			views[i] = toRequestView(request)
		}
		return c.JSON(http.StatusOK, views)
	}
}

func getRequest(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		request, err := data.Requests.GetRequestByID(c.Param("id"))
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(http.StatusOK, toRequestView(request))
	}
}

func updateRequest(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		var body requestBody
		if err := c.Bind(&body); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
		output, err := data.Requests.UpdateRequest(&requestdto.UpdateRequestInput{
			RequestID:   c.Param("id"),
			CompanyName: body.CompanyName,
			RequestType: body.RequestType,
			City:        body.City,
			Language:    body.Language,
			Specialty:   body.Specialty,
			Location:    body.Location,
			Cost:        body.Cost,
		})
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(http.StatusOK, toRequestView(output.Request))
	}
}

func deleteRequest(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		if err := data.Requests.DeleteRequest(c.Param("id")); err != nil {
			return toHTTPError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func matchRequest(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		translators, err := data.Requests.MatchRequest(c.Param("id"))
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

type interestResponse struct {
	Result  string `json:"result"`
	Warning string `json:"warning,omitempty"`
}

func expressInterest(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		output, err := data.Requests.ExpressInterest(&requestdto.ExpressInterestInput{
			Actor:     actorFromRequest(c),
			RequestID: c.Param("id"),
		})
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(http.StatusOK, interestResponse{
			Result:  "interest sent",
			Warning: output.Warning,
		})
	}
}

type assignResponse struct {
	Request requestView `json:"request"`
	Invoice invoiceView `json:"invoice"`
	Warning string      `json:"warning,omitempty"`
}

func assignTranslator(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		output, err := data.Requests.AssignTranslator(&requestdto.AssignTranslatorInput{
			Actor:        actorFromRequest(c),
			RequestID:    c.Param("id"),
			TranslatorID: c.Param("translatorID"),
		})
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(http.StatusOK, assignResponse{
			Request: toRequestView(output.Request),
			Invoice: toInvoiceView(output.Invoice),
			Warning: output.Warning,
		})
	}
}
