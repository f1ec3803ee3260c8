package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-advisor-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-advisor-api/pkg/apiErrors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(req.Email, req.Password)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

// handleLoginError trata erros específicos de login e retorna a resposta apropriada
func handleLoginError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		// Credenciais erradas não revelam se o email existe
		if authenticating.IsCredentialsError(err) {
			apiErrors.WriteError(w, authErr.Code, "Email ou senha inválidos", nil)
			return
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	logrus.WithError(err).Error("Erro inesperado no login")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
}
