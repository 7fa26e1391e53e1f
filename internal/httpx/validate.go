package httpx

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var isbn13Pattern = regexp.MustCompile(`^\d{13}$`)

func init() {
	validate = validator.New()

	validate.RegisterValidation("isbn13", validateISBN13)

	// Report field names as their json tag so the error map matches
	// the request payload.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateISBN13(fl validator.FieldLevel) bool {
	return isbn13Pattern.MatchString(fl.Field().String())
}

// ValidateStruct validates a request struct and returns one message per
// failed field, keyed by payload field name. Nil means the struct is valid.
func ValidateStruct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors := make(map[string]string)
	for _, fieldErr := range err.(validator.ValidationErrors) {
		field := fieldErr.Field()
		param := fieldErr.Param()

		var message string
		switch fieldErr.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", field, param)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		case "isbn13":
			message = fmt.Sprintf("%s must be exactly 13 digits", field)
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", field, param)
		case "gte":
			message = fmt.Sprintf("%s must be at least %s", field, param)
		case "datetime":
			message = fmt.Sprintf("%s must be a date in %s format", field, param)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		fieldErrors[field] = message
	}

	return fieldErrors
}
