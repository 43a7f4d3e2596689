package http

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"workforce-backend/internal/domain/leave"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

var reClock = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// shift times are 24h wall clock, "HH:MM"
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return reClock.MatchString(fl.Field().String())
	})
	// one of the known leave categories
	_ = v.RegisterValidation("leavetype", func(fl validator.FieldLevel) bool {
		return leave.Type(fl.Field().String()).Valid()
	})
	// hours requested in half-hour granularity
	_ = v.RegisterValidation("halfhour", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float() * 2
		return f == float64(int64(f))
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "hhmm":
			out = append(out, FieldError{Field: field, Message: "must be a 24h clock time HH:MM"})
		case "leavetype":
			out = append(out, FieldError{Field: field, Message: "must be a known leave type"})
		case "halfhour":
			out = append(out, FieldError{Field: field, Message: "must be a multiple of 0.5 hours"})
		case "datetime":
			out = append(out, FieldError{Field: field, Message: "must be a date formatted " + e.Param()})
		case "gt":
			out = append(out, FieldError{Field: field, Message: "must be greater than " + e.Param()})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
