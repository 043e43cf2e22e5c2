package models

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Limites de tamanho, em caracteres.
const (
	NameMinLength        = 1
	NameMaxLength        = 100
	DescriptionMaxLength = 500
)

// Item é a única entidade persistida pelo serviço.
//
// As tags dynamodbav definem o layout do registro na tabela
// (description é omitida quando ausente); as tags json definem o
// contrato HTTP (description sai como null quando ausente).
type Item struct {
	ID          string  `json:"id" dynamodbav:"id"`
	Name        string  `json:"name" dynamodbav:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description" dynamodbav:"description,omitempty" validate:"omitempty,max=500"`
	Timestamp   string  `json:"timestamp" dynamodbav:"timestamp"`
}

// Fields lista os atributos persistidos, na ordem do contrato.
var Fields = []string{"id", "name", "description", "timestamp"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Reporta os campos pelo nome JSON ("name"), não pelo nome Go ("Name").
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate aplica as regras de campo do Item.
// Retorna *ValidationError com o detalhe de cada regra violada.
func Validate(ctx context.Context, item *Item) error {
	if err := validate.StructCtx(ctx, item); err != nil {
		return FromValidator(err)
	}
	return nil
}

// AssignIdentity preenche id e timestamp quando ausentes (ou vazios).
// Valores informados pelo cliente são mantidos sem alteração.
func AssignIdentity(item *Item, now func() time.Time, newID func() string) {
	if item.ID == "" {
		item.ID = newID()
	}
	if item.Timestamp == "" {
		item.Timestamp = FormatTimestamp(now())
	}
}

// FormatTimestamp formata o instante em ISO-8601 UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
