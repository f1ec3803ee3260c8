package handler

import (
	"net/http"

	"github.com/vfg2006/business-advisor-api/internal/usecases/analyzing"
	"github.com/vfg2006/business-advisor-api/pkg/apiErrors"
)

type CreateAccountRequest struct {
	Name string `json:"name"`
}

func CreateAccount(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		account, err := service.CreateAccount(r.Context(), req.Name)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, account)
	}
}

func ListAccounts(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accounts, err := service.ListAccounts(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, accounts)
	}
}
