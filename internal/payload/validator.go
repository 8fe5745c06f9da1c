package payload

import (
	"errors"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// Validator checks request payloads against their validate tags and renders
// field errors as English messages.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewValidator creates a Validator with English translations registered.
func NewValidator() (*Validator, error) {
	locale := en.New()
	uni := ut.New(locale, locale)

	translator, ok := uni.GetTranslator("en")
	if !ok {
		return nil, errors.New("payload: english translator not registered")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := entranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, err
	}

	return &Validator{
		validate:   validate,
		translator: translator,
	}, nil
}

// Validate returns nil when the payload passes all tag checks, otherwise an
// error joining the translated message for every failing field.
func (v *Validator) Validate(req any) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fe.Translate(v.translator))
	}

	return errors.New(strings.Join(messages, "; "))
}
