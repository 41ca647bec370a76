package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo-contrib/prometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"github.com/translationbridge/request-service/internal/usecase"
)

// Data wires the usecases into the HTTP surface.
type Data struct {
	Port        int
	Requests    usecase.RequestUsecase
	Invoices    usecase.InvoiceUsecase
	Translators usecase.TranslatorUsecase
	Directory   usecase.DirectoryUsecase
}

var promMdlw *prometheus.Prometheus

func init() {
	promMdlw = prometheus.NewPrometheus("marketplace", nil)
}

// StartWebServer starts the echo web service.
func StartWebServer(data *Data) error {
	log.Info().Msgf("starting HTTP marketplace service at %d", data.Port)

	e := InitRoutes(data)

	e.Server.Addr = ":" + strconv.Itoa(data.Port)
	e.Server.ReadHeaderTimeout = 5 * time.Second
	e.Server.ReadTimeout = 60 * time.Second
	e.Server.WriteTimeout = 30 * time.Second

	return e.Server.ListenAndServe()
}

func InitRoutes(data *Data) *echo.Echo {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	promMdlw.Use(e)

	e.POST("/requests", createRequest(data))
	e.GET("/requests", listRequests(data))
	e.GET("/requests/:id", getRequest(data))
	e.PUT("/requests/:id", updateRequest(data))
	e.DELETE("/requests/:id", deleteRequest(data))
	e.GET("/requests/:id/matches", matchRequest(data))
	e.POST("/requests/:id/interest", expressInterest(data))
	e.POST("/requests/:id/assign/:translatorID", assignTranslator(data))
	e.GET("/requests/:id/invoice", getInvoiceByRequest(data))

	e.GET("/invoices/:id", getInvoice(data))
	e.POST("/invoices/:id/confirm-transfer", confirmTransfer(data))

	e.POST("/translators", createTranslator(data))
	e.GET("/translators", listTranslators(data))
	e.GET("/translators/:id", getTranslator(data))
	e.PUT("/translators/:id", updateTranslator(data))
	e.DELETE("/translators/:id", deleteTranslator(data))
	e.POST("/translators/:id/reviews", addReview(data))
	e.GET("/translators/:id/reviews", listReviews(data))

	e.GET("/directory/countries", listCountries(data))
	e.GET("/directory/cities", listCities(data))
	e.GET("/directory/languages", listLanguages(data))

	e.GET("/live", live())

	log.Info().Msg("routes:")
	for _, r := range e.Routes() {
		log.Info().Msgf("  %s %s", r.Method, r.Path)
	}
	return e
}

func live() func(echo.Context) error {
	return func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, []byte(`{"service":"OK"}`))
	}
}
