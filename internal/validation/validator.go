package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/umalmyha/inquiries/internal/model"
)

const (
	inquiryTypeTag = "inquirytype"
	stringTypeKey  = "string"
)

// FieldViolation describes single field which doesn't satisfy the schema
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PayloadError enumerates every violation found in the payload
type PayloadError struct {
	violations []FieldViolation
}

func (e *PayloadError) Error() string {
	msgs := make([]string, 0, len(e.violations))
	for _, v := range e.violations {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, "; ")
}

// Violation adds violation to the error
func (e *PayloadError) Violation(v FieldViolation) {
	e.violations = append(e.violations, v)
}

// Violations returns all violations in schema order
func (e *PayloadError) Violations() []FieldViolation {
	return e.violations
}

// HasField reports whether field has violation
func (e *PayloadError) HasField(field string) bool {
	for _, v := range e.violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

func (e *PayloadError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Message string           `json:"message"`
		Errors  []FieldViolation `json:"errors"`
	}{
		Message: e.Error(),
		Errors:  e.violations,
	})
}

// inquiryFields is a narrowed inquiry payload, all values are already strings
type inquiryFields struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Company     string `json:"company"`
	InquiryType string `json:"inquiryType" validate:"inquirytype"`
	Message     string `json:"message" validate:"required"`
}

// inquirySchema is an order in which fields are checked and reported
var inquirySchema = []string{"firstName", "lastName", "email", "company", "inquiryType", "message"}

// InquiryValidator narrows untyped payload to model.NewInquiry
type InquiryValidator struct {
	validator  *validator.Validate
	translator ut.Translator
}

// NewInquiryValidator builds validator with english translations
func NewInquiryValidator() (*InquiryValidator, error) {
	enLocale := en.New()
	trans, ok := ut.New(enLocale, enLocale).GetTranslator("en")
	if !ok {
		return nil, fmt.Errorf("missing en translations")
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation(inquiryTypeTag, func(fl validator.FieldLevel) bool {
		return model.InquiryType(fl.Field().String()).Valid()
	}); err != nil {
		return nil, fmt.Errorf("failed to register %s validation - %w", inquiryTypeTag, err)
	}

	if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations - %w", err)
	}

	allowed := make([]string, 0, len(model.InquiryTypes))
	for _, t := range model.InquiryTypes {
		allowed = append(allowed, string(t))
	}
	allowedList := strings.Join(allowed, ", ")

	if err := v.RegisterTranslation(inquiryTypeTag, trans, func(ut ut.Translator) error {
		return ut.Add(inquiryTypeTag, "{0} must be one of [{1}]", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		msg, _ := ut.T(inquiryTypeTag, fe.Field(), allowedList)
		return msg
	}); err != nil {
		return nil, fmt.Errorf("failed to register %s translation - %w", inquiryTypeTag, err)
	}

	if err := trans.Add(stringTypeKey, "{0} must be a string", true); err != nil {
		return nil, fmt.Errorf("failed to register %s translation - %w", stringTypeKey, err)
	}

	return &InquiryValidator{validator: v, translator: trans}, nil
}

// Validate checks raw payload against inquiry schema. Either validated inquiry or *PayloadError is returned.
func (v *InquiryValidator) Validate(raw map[string]any) (*model.NewInquiry, error) {
	found := make(map[string]FieldViolation)
	values := make(map[string]string, len(inquirySchema))

	for _, field := range inquirySchema {
		val, ok := raw[field]
		if !ok || val == nil {
			continue
		}

		s, ok := val.(string)
		if !ok {
			found[field] = v.typeViolation(field)
			continue
		}
		values[field] = strings.TrimSpace(s)
	}

	inquiryType := string(model.InquiryTypeGeneral)
	if s, ok := values["inquiryType"]; ok {
		inquiryType = s
	}

	fields := inquiryFields{
		FirstName:   values["firstName"],
		LastName:    values["lastName"],
		Email:       values["email"],
		Company:     values["company"],
		InquiryType: inquiryType,
		Message:     values["message"],
	}

	if err := v.validator.Struct(&fields); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			return nil, fmt.Errorf("failed to validate inquiry - %w", err)
		}

		for _, fe := range ve {
			if _, exists := found[fe.Field()]; exists {
				continue
			}
			found[fe.Field()] = FieldViolation{Field: fe.Field(), Message: fe.Translate(v.translator)}
		}
	}

	if len(found) > 0 {
		pldErr := &PayloadError{violations: make([]FieldViolation, 0, len(found))}
		for _, field := range inquirySchema {
			if vl, ok := found[field]; ok {
				pldErr.Violation(vl)
			}
		}
		return nil, pldErr
	}

	return &model.NewInquiry{
		FirstName:   fields.FirstName,
		LastName:    fields.LastName,
		Email:       fields.Email,
		Company:     fields.Company,
		InquiryType: model.InquiryType(fields.InquiryType),
		Message:     fields.Message,
	}, nil
}

func (v *InquiryValidator) typeViolation(field string) FieldViolation {
	msg, err := v.translator.T(stringTypeKey, field)
	if err != nil {
		msg = fmt.Sprintf("%s must be a string", field)
	}
	return FieldViolation{Field: field, Message: msg}
}
