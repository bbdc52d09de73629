package types

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Erros sentinela compartilhados pelas camadas.
var (
	ErrNotAuthenticated = errors.New("not logged in. Please run 'finance login' first")
	ErrSessionExpired   = errors.New("session expired. Please log in again")
	ErrReadOnly         = errors.New("this screen is read-only")
	ErrNotFound         = errors.New("record not found")
	ErrCancelled        = errors.New("cancelled by user")
)

// ValidationError é uma falha local, anterior à requisição. Nunca chega à rede.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

// FieldErrors guarda uma mensagem por campo do formulário, com todas as regras avaliadas.
type FieldErrors map[string]string

// Error lista os campos em ordem alfabética para a saída ser estável.
func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fmt.Sprintf("%s: %s", k, fe[k]))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

func IsFieldErrors(err error) bool {
	var fieldErrors FieldErrors
	return errors.As(err, &fieldErrors)
}

// ServerError é o envelope de falha devolvido pelo backend.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}

func IsServerError(err error) bool {
	var serverError *ServerError
	return errors.As(err, &serverError)
}

// StatusOf devolve o status HTTP de um ServerError, ou 0.
func StatusOf(err error) int {
	var serverError *ServerError
	if errors.As(err, &serverError) {
		return serverError.Status
	}
	return 0
}

// TransportError envolve falhas de rede e de decodificação.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func IsTransportError(err error) bool {
	var transportError *TransportError
	return errors.As(err, &transportError)
}
