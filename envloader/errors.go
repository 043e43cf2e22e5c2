// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package envloader

import (
	"fmt"
	"reflect"
)

// Origin identifica a camada que forneceu o valor textual de um campo.
type Origin string

const (
	// OriginDefault indica que o valor veio da tag envDefault.
	OriginDefault Origin = "envDefault"
	// OriginEnv indica que o valor veio de uma variável de ambiente definida.
	OriginEnv Origin = "env"
)

// InvalidConfigError sinaliza que o alvo do carregamento não é um ponteiro
// não nulo para struct.
type InvalidConfigError struct {
	Value reflect.Type
}

func (e *InvalidConfigError) Error() string {
	switch {
	case e.Value == nil:
		return "envloader: config must be a pointer to struct, got nil"
	case e.Value.Kind() != reflect.Ptr:
		return fmt.Sprintf("envloader: config must be a pointer to struct, got %s", e.Value.Kind())
	default:
		return fmt.Sprintf("envloader: config must be a pointer to struct, got pointer to %s", e.Value.Elem().Kind())
	}
}

// FieldError descreve um valor que não pôde ser convertido para o tipo do campo.
//
// Origin diferencia um default mal escrito na struct (erro de programação)
// de uma variável de ambiente inválida (erro de deploy).
type FieldError struct {
	FieldName string
	EnvVar    string
	Value     string
	Origin    Origin
	Err       error
}

func (e *FieldError) Error() string {
	if e.Origin == OriginDefault {
		return fmt.Sprintf("envloader: invalid envDefault %q for field %s (env %s): %v",
			e.Value, e.FieldName, e.EnvVar, e.Err)
	}
	return fmt.Sprintf("envloader: invalid value %q in %s for field %s: %v",
		e.Value, e.EnvVar, e.FieldName, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// UnsupportedTypeError indica um tipo de campo sem conversão a partir de texto
// (map, interface, slice de não-strings).
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("envloader: unsupported type %s", e.Type)
}
