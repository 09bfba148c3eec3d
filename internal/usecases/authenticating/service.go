// Package authenticating emite e valida tokens de API para os clientes do
// painel (camada de apresentação e integrações de exportação).
package authenticating

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/sales-analytics-api/internal/config"
)

// Claims são as claims do token de API.
type Claims struct {
	ClientName string `json:"client_name"`
	jwt.RegisteredClaims
}

// Authenticator define a interface de autenticação consumida pela API.
type Authenticator interface {
	// IssueToken emite um token HMAC para o cliente informado.
	IssueToken(clientName string) (string, time.Time, error)

	// ValidateToken valida o token e retorna as claims.
	ValidateToken(tokenString string) (*Claims, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{cfg: cfg}
}

func (s *Service) IssueToken(clientName string) (string, time.Time, error) {
	if s.cfg.Auth.Secret == "" {
		return "", time.Time{}, ErrMissingSecret
	}

	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return "", time.Time{}, ErrInvalidClient
	}

	ttl := time.Duration(s.cfg.Auth.TokenTTLHours) * time.Hour
	expiresAt := time.Now().Add(ttl)

	claims := Claims{
		ClientName: clientName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Auth.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
