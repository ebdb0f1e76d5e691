package advising

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de recomendações
var (
	ErrSkuNotFound          = errors.New("sku not found in catalog")
	ErrAdvisorNotConfigured = errors.New("gemini API key is not configured")
	ErrAdvisorUnavailable   = errors.New("error calling the AI advisor")
)

// AdvisingError é um erro com contexto adicional de recomendações
type AdvisingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Sku     string // SKU envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AdvisingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AdvisingError) Unwrap() error {
	return e.Err
}

// NewAdvisingError cria um novo AdvisingError
func NewAdvisingError(err error, code string, sku string, details string) *AdvisingError {
	return &AdvisingError{
		Err:     err,
		Code:    code,
		Sku:     sku,
		Details: details,
	}
}
