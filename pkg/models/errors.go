package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError descreve uma regra violada: onde (Loc), o quê (Msg) e a
// categoria (Type).
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationError é retornado quando a entrada não respeita o schema do Item.
// É sempre produzido antes de qualquer acesso ao store.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(f.Loc, "."), f.Msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError cria um ValidationError de um único campo.
func NewValidationError(loc []string, msg, typ string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Loc: loc, Msg: msg, Type: typ}}}
}

// FromValidator converte validator.ValidationErrors em *ValidationError.
// Qualquer outro erro é devolvido como está.
func FromValidator(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, describe(fe))
	}
	return out
}

func describe(fe validator.FieldError) FieldError {
	loc := []string{"body", fe.Field()}

	switch fe.Tag() {
	case "required":
		return FieldError{Loc: loc, Msg: "field required", Type: "value_error.missing"}
	case "min":
		return FieldError{
			Loc:  loc,
			Msg:  fmt.Sprintf("ensure this value has at least %s characters", fe.Param()),
			Type: "value_error.any_str.min_length",
		}
	case "max":
		return FieldError{
			Loc:  loc,
			Msg:  fmt.Sprintf("ensure this value has at most %s characters", fe.Param()),
			Type: "value_error.any_str.max_length",
		}
	default:
		return FieldError{
			Loc:  loc,
			Msg:  fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
			Type: "value_error." + fe.Tag(),
		}
	}
}

// DecodeItem lê um Item de uma entrada não confiável.
//
// JSON malformado, corpo vazio, dados após o objeto e campos com tipo
// errado (ex: "id": 10) viram *ValidationError. Campos desconhecidos são ignorados.
// A validação das regras de campo fica a cargo de Validate.
func DecodeItem(r io.Reader) (Item, error) {
	var item Item

	dec := json.NewDecoder(r)
	err := dec.Decode(&item)
	if err == nil {
		// O corpo deve conter um único valor JSON
		var extra json.RawMessage
		if trailing := dec.Decode(&extra); !errors.Is(trailing, io.EOF) {
			return Item{}, NewValidationError([]string{"body"}, "invalid JSON: unexpected data after the JSON object", "value_error.jsondecode")
		}
		return item, nil
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.Is(err, io.EOF):
		return Item{}, NewValidationError([]string{"body"}, "field required", "value_error.missing")
	case errors.As(err, &typeErr):
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, typeErr.Field)
			return Item{}, NewValidationError(loc, "str type expected", "type_error.str")
		}
		return Item{}, NewValidationError(loc, "value is not a valid dict", "type_error.dict")
	case errors.As(err, &syntaxErr):
		return Item{}, NewValidationError([]string{"body"}, "invalid JSON: "+syntaxErr.Error(), "value_error.jsondecode")
	default:
		return Item{}, NewValidationError([]string{"body"}, "invalid JSON: "+err.Error(), "value_error.jsondecode")
	}
}
