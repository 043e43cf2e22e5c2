package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ConfigValidator struct {
	validate *validator.Validate
}

// NewValidator cria uma nova instância do validador
func NewValidator() *ConfigValidator {
	return &ConfigValidator{
		validate: validator.New(),
	}
}

// Validate realiza validações estruturais (tags) e semânticas (lógica)
func (cv *ConfigValidator) Validate(cfg *ServiceConfig) error {
	// 1. Validação Estrutural (Tags do struct: required, oneof, etc)
	if err := cv.validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var errMsgs []string
			for _, e := range validationErrors {
				errMsgs = append(errMsgs, fmt.Sprintf("Campo '%s' falhou na regra '%s'", e.Namespace(), e.Tag()))
			}
			return fmt.Errorf("erros de validação estrutural:\n- %s", strings.Join(errMsgs, "\n- "))
		}
		return fmt.Errorf("erro de validação estrutural: %w", err)
	}

	// 2. Validação Semântica
	if err := cv.validateSemantics(cfg); err != nil {
		return fmt.Errorf("erro de validação semântica: %w", err)
	}

	return nil
}

func (cv *ConfigValidator) validateSemantics(cfg *ServiceConfig) error {
	// Servidores de longa duração precisam de uma porta válida; no Lambda ela é ignorada.
	if !cfg.Service.IsLambda() && (cfg.Service.Port <= 0 || cfg.Service.Port > 65535) {
		return fmt.Errorf("porta inválida para o runtime '%s': %d", cfg.Service.Runtime, cfg.Service.Port)
	}

	if cfg.DynamoDB.Endpoint != "" && !strings.HasPrefix(cfg.DynamoDB.Endpoint, "http://") &&
		!strings.HasPrefix(cfg.DynamoDB.Endpoint, "https://") {
		return fmt.Errorf("endpoint do DynamoDB deve usar http ou https: '%s'", cfg.DynamoDB.Endpoint)
	}

	return nil
}
