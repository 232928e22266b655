package validation

import (
	"net/url"
	"strconv"
	"strings"

	"imovel-hub/internal/httperr"
)

// Form reads multipart/urlencoded form fields with type coercion.
// Every value arrives as a string; failed coercions accumulate as field
// errors instead of aborting, so the caller gets the full picture.
type Form struct {
	values url.Values
	errs   []httperr.FieldError
}

func NewForm(values url.Values) *Form {
	return &Form{values: values}
}

// Has reports whether the field was present in the request at all,
// which is how partial updates distinguish "clear" from "leave alone".
func (f *Form) Has(key string) bool {
	_, ok := f.values[key]
	return ok
}

func (f *Form) String(key string) string {
	return strings.TrimSpace(f.values.Get(key))
}

func (f *Form) OptString(key string) *string {
	if !f.Has(key) {
		return nil
	}
	s := f.String(key)
	return &s
}

func (f *Form) Int(key string) *int {
	s := f.String(key)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		f.fail(key, "Deve ser um número inteiro")
		return nil
	}
	return &n
}

func (f *Form) Float(key string) *float64 {
	s := f.String(key)
	if s == "" {
		return nil
	}
	// Forms in pt-BR locales sometimes send decimal commas.
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		f.fail(key, "Deve ser um número")
		return nil
	}
	return &v
}

func (f *Form) Bool(key string) *bool {
	s := strings.ToLower(f.String(key))
	if s == "" {
		return nil
	}
	switch s {
	case "true", "1", "sim":
		b := true
		return &b
	case "false", "0", "nao", "não":
		b := false
		return &b
	default:
		f.fail(key, "Deve ser um valor booleano")
		return nil
	}
}

// ForeignKey coerces an id reference, treating "" and "0" as absent.
// A "0" is how forms unlink an association, so it maps to nil.
func (f *Form) ForeignKey(key string) *int {
	s := f.String(key)
	if s == "" || s == "0" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		f.fail(key, "Referência inválida")
		return nil
	}
	return &n
}

func (f *Form) fail(field, msg string) {
	f.errs = append(f.errs, httperr.FieldError{Field: field, Message: msg})
}

func (f *Form) Errors() []httperr.FieldError {
	return f.errs
}

func (f *Form) Err() error {
	if len(f.errs) == 0 {
		return nil
	}
	return httperr.Validation(f.errs)
}

func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
