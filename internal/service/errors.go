package service

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by services and mapped to HTTP responses by
// the handler layer.
var (
	ErrProductNotFound      = errors.New("produto não encontrado")
	ErrCartNotFound         = errors.New("carrinho não encontrado")
	ErrCartEmpty            = errors.New("carrinho vazio")
	ErrCartAlreadyOrdered   = errors.New("carrinho já vinculado a um pedido")
	ErrOrderNotFound        = errors.New("pedido não encontrado")
	ErrInvalidOrderStatus   = errors.New("status de pedido inválido")
	ErrUserNotFound         = errors.New("usuário não encontrado")
	ErrUsernameTaken        = errors.New("nome de usuário já cadastrado")
	ErrInvalidCredentials   = errors.New("usuário ou senha inválidos")
	ErrUserInactive         = errors.New("usuário inativo")
	ErrInvalidToken         = errors.New("token inválido")
	ErrTooManyLoginAttempts = errors.New("muitas tentativas de login")
	ErrInvalidCep           = errors.New("CEP inválido")
	ErrCepNotFound          = errors.New("CEP não encontrado")
)

// OutOfStockError carries enough detail for the per-item rejection body
// of the cart endpoints.
type OutOfStockError struct {
	ProductID uint
	Requested int
	Available int
}

// Error implements error.
func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("produto %d não possui estoque: solicitado %d, disponível %d",
		e.ProductID, e.Requested, e.Available)
}

// StatusRuleError is returned when an order status transition is
// rejected. Message is the customer-facing Portuguese sentence.
type StatusRuleError struct {
	Message string
}

// Error implements error.
func (e *StatusRuleError) Error() string {
	return e.Message
}

// ValidationError is a field-level rejection surfaced as 400.
type ValidationError struct {
	Message string
}

// Error implements error.
func (e *ValidationError) Error() string {
	return e.Message
}
