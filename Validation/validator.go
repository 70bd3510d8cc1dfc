package Validation

import (
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate *validator.Validate
	trans    ut.Translator
)

func init() {
	validate = validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ = uni.GetTranslator("en")
	en_translations.RegisterDefaultTranslations(validate, trans)
}

// Struct validates a request payload and returns translated messages keyed
// by field name. An empty map means the payload is valid.
func Struct(payload interface{}) map[string]string {
	errors := make(map[string]string)
	if err := validate.Struct(payload); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldError := range fieldErrors {
				errors[fieldError.Field()] = fieldError.Translate(trans)
			}
		} else {
			errors["payload"] = err.Error()
		}
	}
	return errors
}
