package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/translationbridge/request-service/internal/domain"
	requestdto "github.com/translationbridge/request-service/internal/usecase/dto/request"
)

var (
	requestsMock *mockRequestUsecase
	invoicesMock *mockInvoiceUsecase
	testEcho     *echo.Echo
)

func initTest(t *testing.T) {
	requestsMock = &mockRequestUsecase{}
	invoicesMock = &mockInvoiceUsecase{}
	testEcho = InitRoutes(&Data{
		Port:     8000,
		Requests: requestsMock,
		Invoices: invoicesMock,
	})
}

func asCompany(req *http.Request) *http.Request {
	req.Header.Set(userIDHeader, "company-1")
	req.Header.Set(userMailHeader, "company@test.lt")
	req.Header.Set(userNameHeader, "Acme Corp")
	return req
}

func TestCreateRequest(t *testing.T) {
	initTest(t)
	requestsMock.On("CreateRequest", mock.Anything).Return(
		&requestdto.RequestOutput{Request: &domain.TranslationRequest{
			ID:          "r-1",
			CompanyID:   "company-1",
			CompanyName: "Acme Corp",
			RequestType: "document",
			Status:      domain.RequestPending,
		}}, nil)

	req := asCompany(httptest.NewRequest(http.MethodPost, "/requests",
		strings.NewReader(`{"company_name":"Acme Corp","request_type":"document","cost":"100"}`)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	testEcho.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
	input := requestsMock.Calls[0].Arguments.Get(0).(*requestdto.CreateRequestInput)
	assert.Equal(t, "company-1", input.Actor.UserID)
	assert.True(t, input.Actor.Authenticated)
}

func TestCreateRequest_ValidationFailure(t *testing.T) {
	initTest(t)
	requestsMock.On("CreateRequest", mock.Anything).Return(
		nil, domain.NewValidationError("company_name", "must not be empty"))

	req := asCompany(httptest.NewRequest(http.MethodPost, "/requests",
		strings.NewReader(`{"request_type":"document"}`)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	testEcho.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRequest_NotFound(t *testing.T) {
	initTest(t)
	requestsMock.On("GetRequestByID", "missing").Return(nil, domain.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/requests/missing", nil)
	rec := httptest.NewRecorder()

	testEcho.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListRequests_Anonymous(t *testing.T) {
	initTest(t)

	req := httptest.NewRequest(http.MethodGet, "/requests", nil)
	rec := httptest.NewRecorder()

	testEcho.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	requestsMock.AssertNotCalled(t, "ListRequests")
}

func TestAssignTranslator_Conflict(t *testing.T) {
	initTest(t)
	requestsMock.On("AssignTranslator", mock.Anything).Return(nil, domain.ErrConflict)

	req := asCompany(httptest.NewRequest(http.MethodPost, "/requests/r-1/assign/t-1", nil))
	rec := httptest.NewRecorder()

	testEcho.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestExpressInterest(t *testing.T) {
	initTest(t)
	requestsMock.On("ExpressInterest", mock.Anything).Return(
		&requestdto.ExpressInterestOutput{}, nil)

	req := asCompany(httptest.NewRequest(http.MethodPost, "/requests/r-1/interest", nil))
	rec := httptest.NewRecorder()

	testEcho.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"result":"interest sent"`)
	// No warning key at all on a clean send.
	assert.NotContains(t, rec.Body.String(), "warning")
}

func TestExpressInterest_WarningPassedThrough(t *testing.T) {
	initTest(t)
	requestsMock.On("ExpressInterest", mock.Anything).Return(
		&requestdto.ExpressInterestOutput{Warning: "interest recorded, but the notification email failed"}, nil)

	req := asCompany(httptest.NewRequest(http.MethodPost, "/requests/r-1/interest", nil))
	rec := httptest.NewRecorder()

	testEcho.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "notification email failed")
}

func TestConfirmTransfer_Forbidden(t *testing.T) {
	initTest(t)
	invoicesMock.On("ConfirmTransfer", mock.Anything).Return(nil, domain.ErrUnauthorized)

	req := asCompany(httptest.NewRequest(http.MethodPost, "/invoices/inv-1/confirm-transfer", nil))
	rec := httptest.NewRecorder()

	testEcho.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLive(t *testing.T) {
	initTest(t)

	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	rec := httptest.NewRecorder()

	testEcho.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"service":"OK"}`, rec.Body.String())
}
