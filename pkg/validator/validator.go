package validator

import (
	"github.com/go-playground/validator/v10"
)

// weekdays holds the English weekday names used by the day_of_week columns.
var weekdays = map[string]struct{}{
	"Sunday": {}, "Monday": {}, "Tuesday": {}, "Wednesday": {},
	"Thursday": {}, "Friday": {}, "Saturday": {},
}

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	// day_of_week fields must be a full English weekday name.
	v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		_, ok := weekdays[fl.Field().String()]
		return ok
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "min":
				errors[field] = field + " must be at least " + e.Param()
			case "max":
				errors[field] = field + " must be at most " + e.Param()
			case "weekday":
				errors[field] = field + " must be an English weekday name, e.g. Wednesday"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
