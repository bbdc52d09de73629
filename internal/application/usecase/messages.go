package usecase

import (
	"errors"

	"github.com/diillson/finance-tracker-cli/internal/shared/types"
)

// Confirmer obtém uma confirmação sim/não do usuário.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// confirmed trata erro de prompt (ex.: Ctrl-C) como recusa.
func confirmed(c Confirmer, question string) bool {
	if c == nil {
		return false
	}
	ok, err := c.Confirm(question)
	return err == nil && ok
}

// userMessage converte o erro de uma ação no texto mostrado ao usuário.
// Mensagens do servidor aparecem como vieram; falhas de rede usam o texto genérico.
func userMessage(err error, networkMsg string) string {
	var serverError *types.ServerError
	var transportError *types.TransportError

	switch {
	case errors.As(err, &serverError):
		return serverError.Message
	case errors.As(err, &transportError):
		return networkMsg
	default:
		return err.Error()
	}
}
