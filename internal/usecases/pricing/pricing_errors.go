package pricing

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de preços
var (
	ErrSkuNotFound  = errors.New("sku not found in catalog")
	ErrInvalidPrice = errors.New("submitted price must be positive")
	ErrScrapeFailed = errors.New("error scraping marketplace data")
)

// PricingError é um erro com contexto adicional de preços
type PricingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Sku     string // SKU envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *PricingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *PricingError) Unwrap() error {
	return e.Err
}

// NewPricingError cria um novo PricingError
func NewPricingError(err error, code string, sku string, details string) *PricingError {
	return &PricingError{
		Err:     err,
		Code:    code,
		Sku:     sku,
		Details: details,
	}
}
