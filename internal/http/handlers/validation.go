package handlers

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rogerio-castellano/expiry-tracker/internal/expiry"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validDate(value any) error {
	s, _ := value.(string)
	if _, err := expiry.ParseDate(s); err != nil {
		return errors.New("must be a calendar date in YYYY-MM-DD format")
	}
	return nil
}

func validateProduct(p ProductRequest) []ProductValidationError {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.ExpiryDate, validation.Required, validation.By(validDate)),
		validation.Field(&p.Quantity, validation.Min(1)),
	)
	return toValidationErrors(err)
}

func validateCategory(c CategoryRequest) []ProductValidationError {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.Length(1, 60)),
		validation.Field(&c.Icon, validation.Required),
	)
	return toValidationErrors(err)
}

func validateProfile(p ProfileRequest) []ProductValidationError {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.NotificationDaysBefore, validation.Min(0), validation.Max(365)),
	)
	return toValidationErrors(err)
}

// toValidationErrors flattens ozzo's field->error map into the API's stable
// error array shape, sorted by field for deterministic responses.
func toValidationErrors(err error) []ProductValidationError {
	if err == nil {
		return nil
	}
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return []ProductValidationError{{Field: "request", Description: err.Error()}}
	}
	out := make([]ProductValidationError, 0, len(fieldErrs))
	for field, ferr := range fieldErrs {
		out = append(out, ProductValidationError{Field: field, Description: ferr.Error()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}
