package authenticating

import (
	"errors"
)

// Tipos de erros de autenticação personalizados
var (
	ErrInvalidToken  = errors.New("token inválido")
	ErrExpiredToken  = errors.New("token expirado")
	ErrMissingSecret = errors.New("segredo de autenticação não configurado")
	ErrInvalidClient = errors.New("identificação de cliente inválida")
)

// IsAuthorizationError verifica se o erro está relacionado a problemas de token
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken)
}
