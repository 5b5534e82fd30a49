package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/inquiries/internal/model"
	"github.com/umalmyha/inquiries/internal/repository"
	rpsMocks "github.com/umalmyha/inquiries/internal/repository/mocks"
	"github.com/umalmyha/inquiries/internal/service"
	"github.com/umalmyha/inquiries/internal/validation"
)

const janeDoeJSON = `{
	"firstName":"Jane",
	"lastName":"Doe",
	"email":"jane@example.com",
	"company":"Acme",
	"inquiryType":"Quote Request",
	"message":"Need a quote"
}`

type handlersTestSuite struct {
	suite.Suite
	app               *echo.Echo
	validator         *validation.InquiryValidator
	inquiryRps        repository.InquiryRepository
	inquiryHTTPHandle *InquiryHTTPHandler
}

func (s *handlersTestSuite) SetupSuite() {
	v, err := validation.NewInquiryValidator()
	s.Require().NoError(err, "failed to build inquiry validator")
	s.validator = v
}

func (s *handlersTestSuite) SetupTest() {
	log := logrus.New()
	log.SetOutput(io.Discard)

	s.app = echo.New()
	s.app.HTTPErrorHandler = ErrorHandler(log)

	s.inquiryRps = repository.NewMemoryInquiryRepository()
	s.inquiryHTTPHandle = NewInquiryHTTPHandler(service.NewInquiryService(s.inquiryRps, nil), s.validator)

	grp := s.app.Group("/inquiries")
	grp.POST("", s.inquiryHTTPHandle.Post)
	grp.GET("", s.inquiryHTTPHandle.GetAll)
	grp.GET("/:id", s.inquiryHTTPHandle.Get)
}

//nolint:funlen // function contains a lot of inlined tests
func (s *handlersTestSuite) TestInquiryHTTPHandler() {
	t := s.T()
	require := s.Require()
	h := s.inquiryHTTPHandle

	var created model.Inquiry

	t.Log("post inquiry with wrong payload")
	{
		wrongPayloadJSON := `{"firstName":"Jane","lastName`
		c, _ := s.echoPostContext("/inquiries", wrongPayloadJSON)
		err := h.Post(c)
		require.Error(err, "wrong payload has been provided but no error raised")
		require.IsType(&echo.HTTPError{}, err, "error must be echo error")
		require.Equal(http.StatusBadRequest, err.(*echo.HTTPError).Code, "malformed body must be bad request")
	}

	t.Log("post inquiry with invalid data in payload")
	{
		invalidJSON := strings.Replace(janeDoeJSON, "jane@example.com", "jane", 1)
		c, _ := s.echoPostContext("/inquiries", invalidJSON)
		err := h.Post(c)
		require.Error(err, "invalid data in payload has been provided but no error raised")
		require.IsType(&validation.PayloadError{}, err, "error must be payload error")
		require.True(err.(*validation.PayloadError).HasField("email"), "email must be reported")

		all, err := s.inquiryRps.FindAll(context.Background())
		require.NoError(err)
		require.Empty(all, "invalid inquiry must not be stored")
	}

	t.Log("post inquiry successfully")
	{
		c, rec := s.echoPostContext("/inquiries", janeDoeJSON)
		err := h.Post(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response code must be OK")

		require.NoError(json.NewDecoder(rec.Body).Decode(&created), "failed to parse inquiry from response")
		require.NotEmpty(created.ID, "id must be generated")
		require.False(created.CreatedAt.IsZero(), "creation time must be set")
		require.Equal("Jane", created.FirstName)
		require.Equal("Doe", created.LastName)
		require.Equal("jane@example.com", created.Email)
		require.Equal("Acme", created.Company)
		require.Equal(model.InquiryTypeQuoteRequest, created.InquiryType)
		require.Equal("Need a quote", created.Message)
	}

	t.Log("get missing inquiry")
	{
		c, _ := s.echoGetContext("/inquiries/unknown-id", "unknown-id")
		err := h.Get(c)
		require.Error(err, "inquiry is missing but no error raised")
		require.IsType(&echo.HTTPError{}, err, "error must be echo error")
		require.Equal(http.StatusNotFound, err.(*echo.HTTPError).Code, "code must be not found")
	}

	t.Log("get inquiry by id")
	{
		c, rec := s.echoGetContext(fmt.Sprintf("/inquiries/%s", created.ID), created.ID)
		err := h.Get(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response code must be OK")

		var found model.Inquiry
		require.NoError(json.NewDecoder(rec.Body).Decode(&found), "failed to parse inquiry from response")
		require.Equal(created, found, "inquiry must be returned unchanged")
	}

	t.Log("get all inquiries")
	{
		c, rec := s.echoGetContext("/inquiries", "")
		err := h.GetAll(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response code must be OK")

		var all []model.Inquiry
		require.NoError(json.NewDecoder(rec.Body).Decode(&all), "failed to parse inquiries from response")
		require.Len(all, 1)
	}
}

func (s *handlersTestSuite) TestInquiryScenarios() {
	t := s.T()
	require := s.Require()

	t.Log("empty list is returned as array")
	{
		rec := s.serve(http.MethodGet, "/inquiries", "")
		require.Equal(http.StatusOK, rec.Code)
		require.JSONEq(`[]`, rec.Body.String())
	}

	t.Log("valid submission is stored")
	var first model.Inquiry
	{
		rec := s.serve(http.MethodPost, "/inquiries", janeDoeJSON)
		require.Equal(http.StatusOK, rec.Code)
		require.NoError(json.Unmarshal(rec.Body.Bytes(), &first))
	}

	t.Log("invalid email is rejected with field details")
	{
		rec := s.serve(http.MethodPost, "/inquiries", strings.Replace(janeDoeJSON, "jane@example.com", "jane", 1))
		require.Equal(http.StatusBadRequest, rec.Code)

		var body struct {
			Message string                     `json:"message"`
			Errors  []validation.FieldViolation `json:"errors"`
		}
		require.NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(body.Errors, 1)
		require.Equal("email", body.Errors[0].Field)
		require.Contains(body.Message, "email")
	}

	t.Log("inquiry type defaults when omitted")
	var second model.Inquiry
	{
		rec := s.serve(http.MethodPost, "/inquiries", `{"firstName":"John","lastName":"Roe","email":"john@example.com","message":"Hello"}`)
		require.Equal(http.StatusOK, rec.Code)
		require.NoError(json.Unmarshal(rec.Body.Bytes(), &second))
		require.Equal(model.InquiryTypeGeneral, second.InquiryType)
		require.NotEqual(first.ID, second.ID, "ids must be distinct")
	}

	t.Log("malformed json is rejected")
	{
		rec := s.serve(http.MethodPost, "/inquiries", `{"firstName":`)
		require.Equal(http.StatusBadRequest, rec.Code)
		require.JSONEq(`{"message":"malformed request body"}`, rec.Body.String())
	}

	t.Log("unknown id is not found")
	{
		rec := s.serve(http.MethodGet, "/inquiries/does-not-exist", "")
		require.Equal(http.StatusNotFound, rec.Code)
		require.JSONEq(`{"message":"inquiry not found"}`, rec.Body.String())
	}

	t.Log("both inquiries are listed in creation order")
	{
		rec := s.serve(http.MethodGet, "/inquiries", "")
		require.Equal(http.StatusOK, rec.Code)

		var all []model.Inquiry
		require.NoError(json.Unmarshal(rec.Body.Bytes(), &all))
		require.Len(all, 2)
		require.Equal(first.ID, all[0].ID)
		require.Equal(second.ID, all[1].ID)
	}
}

func (s *handlersTestSuite) TestStorageFailureIsHidden() {
	t := s.T()
	require := s.Require()

	rpsMock := rpsMocks.NewInquiryRepository(t)
	rpsMock.On("Create", mock.Anything, mock.AnythingOfType("*model.Inquiry")).Return(errors.New("dial tcp 10.0.0.5:5432: connection refused")).Once()
	rpsMock.On("FindAll", mock.Anything).Return(nil, errors.New("dial tcp 10.0.0.5:5432: connection refused")).Once()

	h := NewInquiryHTTPHandler(service.NewInquiryService(rpsMock, nil), s.validator)

	t.Log("post inquiry when storage is down")
	{
		c, rec := s.echoPostContext("/inquiries", janeDoeJSON)
		s.app.HTTPErrorHandler(h.Post(c), c)
		require.Equal(http.StatusInternalServerError, rec.Code)
		require.JSONEq(`{"message":"internal server error"}`, rec.Body.String(), "storage details must not leak")
	}

	t.Log("get all inquiries when storage is down")
	{
		c, rec := s.echoGetContext("/inquiries", "")
		s.app.HTTPErrorHandler(h.GetAll(c), c)
		require.Equal(http.StatusInternalServerError, rec.Code)
		require.NotContains(rec.Body.String(), "10.0.0.5")
	}
}

func (s *handlersTestSuite) echoPostContext(target, payload string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.app.NewContext(req, rec), rec
}

func (s *handlersTestSuite) echoGetContext(target, id string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, strings.NewReader(""))
	rec := httptest.NewRecorder()
	c := s.app.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}

func (s *handlersTestSuite) serve(method, target, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(payload))
	if payload != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.app.ServeHTTP(rec, req)
	return rec
}

// start handlers test suite
func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(handlersTestSuite))
}

func TestHealthHTTPHandler(t *testing.T) {
	e := echo.New()

	t.Log("all checks pass")
	{
		h := NewHealthHTTPHandler(map[string]HealthCheck{
			"storage": func(context.Context) error { return nil },
		})

		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
		require.NoError(t, h.Check(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"status":"healthy","checks":{"storage":"up"}}`, rec.Body.String())
	}

	t.Log("one check fails")
	{
		h := NewHealthHTTPHandler(map[string]HealthCheck{
			"storage": func(context.Context) error { return nil },
			"cache":   func(context.Context) error { return errors.New("redis is down") },
		})

		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
		require.NoError(t, h.Check(c))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.JSONEq(t, `{"status":"unhealthy","checks":{"storage":"up","cache":"down"}}`, rec.Body.String())
	}
}
