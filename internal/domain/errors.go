package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrAuthRequired      = errors.New("autenticação necessária")
	ErrNotFound          = errors.New("registro não encontrado")
	ErrDuplicateEmail    = errors.New("e-mail já cadastrado")
	ErrWrongCredentials  = errors.New("e-mail ou senha incorretos")
	ErrWeakPassword      = errors.New("a senha deve ter pelo menos 6 caracteres")
	ErrInvalidEmail      = errors.New("e-mail inválido")
	ErrDisabled          = errors.New("conta desativada")
	ErrRateLimited       = errors.New("muitas tentativas, tente novamente mais tarde")
	ErrEventClosed       = errors.New("este evento já foi encerrado")
	ErrRemoteUnavailable = errors.New("serviço temporariamente indisponível")
	ErrNotAdmin          = errors.New("apenas administradores podem realizar esta ação")
	ErrMissingFields     = errors.New("campos obrigatórios ausentes")
	ErrInvalidCategory   = errors.New("categoria de evento inválida")
)

// PartialWriteError reports a participation toggle that committed one of its
// two document writes but not the other. The applied write is not rolled
// back; both remote set mutations are idempotent, so retrying the toggle
// converges.
type PartialWriteError struct {
	Applied string // write that committed ("event" or "user")
	Failed  string // write that did not
	Err     error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("escrita parcial: %s aplicada, %s falhou: %v", e.Applied, e.Failed, e.Err)
}

func (e *PartialWriteError) Unwrap() error {
	return e.Err
}
