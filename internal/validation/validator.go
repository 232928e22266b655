package validation

import (
	"fmt"
	"reflect"
	"strings"

	"imovel-hub/internal/httperr"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate runs struct validation and returns every violation at once,
// one entry per failing field. A nil result means the input passed.
func Validate(s any) []httperr.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []httperr.FieldError{{Field: "body", Message: "Corpo da requisição inválido"}}
	}

	details := make([]httperr.FieldError, len(verrs))
	for i, fe := range verrs {
		details[i] = httperr.FieldError{Field: fe.Field(), Message: message(fe)}
	}
	return details
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Campo obrigatório"
	case "email":
		return "Email inválido"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Deve ter no mínimo %s caracteres", fe.Param())
		}
		return fmt.Sprintf("Deve ser no mínimo %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Deve ter no máximo %s caracteres", fe.Param())
		}
		return fmt.Sprintf("Deve ser no máximo %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Deve ser um de: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("Deve ser maior ou igual a %s", fe.Param())
	case "url":
		return "URL inválida"
	default:
		return "Valor inválido"
	}
}
