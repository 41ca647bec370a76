package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	invoicedto "github.com/translationbridge/request-service/internal/usecase/dto/invoice"
)

func getInvoice(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		invoice, err := data.Invoices.GetInvoice(&invoicedto.GetInvoiceInput{
			Actor:     actorFromRequest(c),
			InvoiceID: c.Param("id"),
		})
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(http.StatusOK, toInvoiceView(invoice))
	}
}

func getInvoiceByRequest(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		invoice, err := data.Invoices.GetInvoiceByRequestID(c.Param("id"))
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(http.StatusOK, toInvoiceView(invoice))
	}
}

type confirmTransferResponse struct {
	Invoice invoiceView `json:"invoice"`
	Warning string      `json:"warning,omitempty"`
}

func confirmTransfer(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		output, err := data.Invoices.ConfirmTransfer(&invoicedto.ConfirmTransferInput{
			Actor:     actorFromRequest(c),
			InvoiceID: c.Param("id"),
		})
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(http.StatusOK, confirmTransferResponse{
			Invoice: toInvoiceView(output.Invoice),
			Warning: output.Warning,
		})
	}
}
