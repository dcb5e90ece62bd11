package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-contact-book/models"
)

// Form field names as submitted by the HTML forms.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldNumber          = "number"
	FieldImage           = "image"
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldURL             = "url"
	FieldDescription     = "description"
)

// messages maps "field.tag" to the text shown to the user. Unlisted
// combinations fall back to a generic message.
var messages = map[string]string{
	FieldName + ".required":           "Please enter a valid name",
	FieldEmail + ".required":          "Please enter a valid email",
	FieldEmail + ".contains":          "Please enter a valid email",
	FieldConfirmPassword + ".eqfield": "Passwords do not match",
	FieldUsername + ".required":       "Please enter a username",
	FieldPassword + ".required":       "Please enter a password",
	FieldURL + ".required":            "Please enter a URL",
	FieldDescription + ".max":         "Description is too long",
}

// FormValidator implements [Validator] for the form inputs in models:
// ContactInput, RegistrationInput, LoginInput and BookmarkInput. Both value
// and pointer forms are accepted.
type FormValidator struct {
	validate *validator.Validate
}

// NewFormValidator returns a ready-to-use FormValidator. It is safe for
// concurrent use.
func NewFormValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &FormValidator{validate: v}
}

// Validate checks obj against its struct tags. When fields are given, only
// those struct fields (Go names, e.g. "Email") are checked.
//
// Returns ErrUnsupportedType for anything other than a form input and a
// *ValidationError when any rule fails.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.ContactInput, *models.ContactInput,
		models.RegistrationInput, *models.RegistrationInput,
		models.LoginInput, *models.LoginInput,
		models.BookmarkInput, *models.BookmarkInput:
	default:
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		if err = checkFields(obj, fields); err != nil {
			return err
		}
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}

	return toValidationError(err)
}

func checkFields(obj any, fields []string) error {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	for _, f := range fields {
		if _, ok := t.FieldByName(f); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return nil
}

func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	result := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		result.Fields = append(result.Fields, FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe.Field(), fe.Tag(), fe.Param()),
		})
	}

	return result
}

func messageFor(field, tag, param string) string {
	if msg, ok := messages[field+"."+tag]; ok {
		return msg
	}
	if tag == "max" {
		return fmt.Sprintf("%s must be at most %s characters", label(field), param)
	}
	return fmt.Sprintf("Please enter a valid %s", strings.ReplaceAll(field, "_", " "))
}

func label(field string) string {
	field = strings.ReplaceAll(field, "_", " ")
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
