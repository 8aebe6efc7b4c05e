// AngelaMos | 2026
// validation.go

package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var enumTags = map[string][]string{
	"role":            Roles,
	"division":        Divisions,
	"region":          Regions,
	"opp_status":      OpportunityStatuses,
	"gravite":         Gravites,
	"incident_status": IncidentStatuses,
	"lang":            Langs,
}

// NewValidator returns a validator that knows the closed enumerations
// used across the request DTOs.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, values := range enumTags {
		match := oneOf(values)
		//nolint:errcheck // tags are static and non-empty
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return match(fl.Field().String())
		})
	}

	return v
}

// MaxBodyBytes caps every JSON request body.
const MaxBodyBytes = 1 << 20

// Bind decodes a JSON body into dst and validates it. The returned error
// is always an *AppError ready for JSONError.
func Bind(r *http.Request, v *validator.Validate, dst any) *AppError {
	r.Body = http.MaxBytesReader(nil, r.Body, MaxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return NewAppError(
				ErrInvalidInput,
				fmt.Sprintf("request body exceeds %d bytes", MaxBodyBytes),
				http.StatusRequestEntityTooLarge,
				"PAYLOAD_TOO_LARGE",
			)
		}
		return ValidationError("invalid request body")
	}

	if err := v.Struct(dst); err != nil {
		return ValidationError(FormatValidationError(err))
	}

	return nil
}

func FormatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeField(fe))
	}

	return strings.Join(msgs, "; ")
}

func describeField(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", field, fe.Param())
	}

	if values, ok := enumTags[fe.Tag()]; ok {
		return fmt.Sprintf(
			"%s must be one of: %s",
			field,
			strings.Join(values, ", "),
		)
	}

	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}
