package validator

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	// EmailPattern accepts institutional addresses only, on either the
	// student (@my.utsa.edu) or staff (@utsa.edu) domain.
	EmailPattern = regexp.MustCompile(`(?i)^[^\s@]+@(my\.)?utsa\.edu$`)

	// SchoolIDPattern matches the institution-issued abc123 identifier:
	// 2-3 letters followed by 3-4 digits.
	SchoolIDPattern = regexp.MustCompile(`(?i)^[a-z]{2,3}[0-9]{3,4}$`)
)

// trans is the singleton English translator for validation errors.
var trans ut.Translator

// Setup registers the validator with English translations and the custom
// signup validations on Gin's binding engine. Call once during startup.
func Setup() {
	if v, ok := binding.Validator.Engine().(*govalidator.Validate); ok {
		// Use JSON tag name for field names in error messages.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("utsa_email", func(fl govalidator.FieldLevel) bool {
			return EmailPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("utsa_id", func(fl govalidator.FieldLevel) bool {
			return SchoolIDPattern.MatchString(fl.Field().String())
		})

		// Register English translations.
		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		trans, _ = uni.GetTranslator("en")
		en_translations.RegisterDefaultTranslations(v, trans)
	}
}

// TranslateErrors takes a binding/validation error and returns a map of
// field name → human-readable error message, used for server-side logging.
// If the error is not a validation error, it returns a single-key map with
// "detail".
func TranslateErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fe.Translate(trans)
		}
		return fields
	}

	// Not a validation error (e.g., JSON syntax error).
	fields["detail"] = err.Error()
	return fields
}
