package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/inquiries/internal/service"
	"github.com/umalmyha/inquiries/internal/validation"
)

// newInquiry documents payload shape, the handler itself reads untyped map
type newInquiry struct {
	FirstName   string `json:"firstName" example:"Jane"`
	LastName    string `json:"lastName" example:"Doe"`
	Email       string `json:"email" example:"jane@example.com"`
	Company     string `json:"company,omitempty" example:"Acme"`
	InquiryType string `json:"inquiryType,omitempty" enums:"General Inquiry,Product Information,Partnership Opportunity,Technical Support,Quote Request" default:"General Inquiry"`
	Message     string `json:"message" example:"Need a quote"`
}

// InquiryHTTPHandler is http handler for inquiry endpoint
type InquiryHTTPHandler struct {
	inquirySvc service.InquiryService
	validator  *validation.InquiryValidator
}

// NewInquiryHTTPHandler builds new InquiryHTTPHandler
func NewInquiryHTTPHandler(inquirySvc service.InquiryService, validator *validation.InquiryValidator) *InquiryHTTPHandler {
	return &InquiryHTTPHandler{
		inquirySvc: inquirySvc,
		validator:  validator,
	}
}

// Post submits inquiry
// @Summary     Submit inquiry
// @Description Validates contact inquiry and stores it
// @Tags        inquiries
// @Accept		json
// @Produce     json
// @Param 		newInquiry body	    newInquiry true "Inquiry data"
// @Success     200    	   {object} model.Inquiry
// @Failure     400    	   {object} validation.PayloadError
// @Failure     500    	   {object} echo.HTTPError
// @Router      /inquiries [post]
func (h *InquiryHTTPHandler) Post(c echo.Context) error {
	raw := make(map[string]any)
	if err := c.Bind(&raw); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code != http.StatusBadRequest {
			return err
		}
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body").SetInternal(err)
	}

	ni, err := h.validator.Validate(raw)
	if err != nil {
		return err
	}

	inquiry, err := h.inquirySvc.Create(c.Request().Context(), ni)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, inquiry)
}

// GetAll returns all inquiries
// @Summary     Get all inquiries
// @Description Returns all submitted inquiries, oldest first
// @Tags        inquiries
// @Produce     json
// @Success     200 {array}  model.Inquiry
// @Failure     500 {object} echo.HTTPError
// @Router      /inquiries [get]
func (h *InquiryHTTPHandler) GetAll(c echo.Context) error {
	inquiries, err := h.inquirySvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inquiries)
}

// Get returns inquiry by id
// @Summary     Get inquiry by id
// @Description Returns single inquiry with provided id
// @Tags        inquiries
// @Produce     json
// @Param       id  path 	 string true "Inquiry id"
// @Success     200 {object} model.Inquiry
// @Failure     404 {object} echo.HTTPError
// @Failure     500 {object} echo.HTTPError
// @Router      /inquiries/{id} [get]
func (h *InquiryHTTPHandler) Get(c echo.Context) error {
	inquiry, err := h.inquirySvc.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	if inquiry == nil {
		return echo.NewHTTPError(http.StatusNotFound, "inquiry not found")
	}

	return c.JSON(http.StatusOK, inquiry)
}
