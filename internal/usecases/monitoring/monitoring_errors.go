package monitoring

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de monitoramento
var (
	// Erros de catálogo
	ErrSkuNotFound     = errors.New("sku not found in catalog")
	ErrSkuNotTracked   = errors.New("sku is not tracked")
	ErrShopNotFound    = errors.New("shop not found")
	ErrManagerNotFound = errors.New("manager not found")

	// Conflitos de rastreamento e comparação
	ErrSkuAlreadyTracked      = errors.New("sku is already tracked")
	ErrSkuWrongShop           = errors.New("sku belongs to another shop")
	ErrSkuWrongManager        = errors.New("sku belongs to another manager")
	ErrSkuIsMainProduct       = errors.New("sku is the selected main product")
	ErrSkuAlreadyInComparison = errors.New("sku is already in the comparison set")
	ErrManagerWrongShop       = errors.New("manager belongs to another shop")

	// Erros de validação
	ErrNameRequired    = errors.New("name is required")
	ErrShopNotSelected = errors.New("a concrete shop must be selected")
	ErrGenerateID      = errors.New("error generating unique ID")
)

// MonitoringError é um erro com contexto adicional do monitoramento
type MonitoringError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Sku     string // SKU envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *MonitoringError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *MonitoringError) Unwrap() error {
	return e.Err
}

// NewMonitoringError cria um novo MonitoringError
func NewMonitoringError(err error, code string, details string) *MonitoringError {
	return &MonitoringError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewMonitoringErrorWithSku cria um novo MonitoringError com o SKU envolvido
func NewMonitoringErrorWithSku(err error, code string, sku string, details string) *MonitoringError {
	return &MonitoringError{
		Err:     err,
		Code:    code,
		Sku:     sku,
		Details: details,
	}
}
