package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
)

type TokenRequest struct {
	ClientName string `json:"client_name"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// IssueToken emite um token de API para o cliente informado no corpo da
// requisição. A rota é pública; o token resultante autoriza as demais rotas.
func IssueToken(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TokenRequest

		// Decodificar o corpo da requisição
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, expiresAt, err := service.IssueToken(req.ClientName)
		if err != nil {
			handleTokenError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(TokenResponse{
			Token:     token,
			ExpiresAt: expiresAt.Format(time.RFC3339),
		}); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta do token")
		}
	}
}

// handleTokenError trata erros específicos da emissão de token
func handleTokenError(w http.ResponseWriter, err error) {
	switch err {
	case authenticating.ErrInvalidClient:
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do cliente é obrigatório", nil)
	case authenticating.ErrMissingSecret:
		logrus.Error("Segredo de autenticação não configurado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Autenticação indisponível", nil)
	default:
		logrus.WithError(err).Error("Erro ao emitir token")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao emitir token", nil)
	}
}
