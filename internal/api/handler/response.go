package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-advisor-api/internal/domain"
	"github.com/vfg2006/business-advisor-api/internal/usecases/analyzing"
	"github.com/vfg2006/business-advisor-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON envia a resposta com o status informado
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz erros das camadas de domínio e de serviço para a resposta da API
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		details := map[string]any{"field": validationErr.Field}
		if validationErr.Index >= 0 {
			details["index"] = validationErr.Index
		}
		apiErrors.WriteError(w, apiErrors.ErrInvalidRecord, validationErr.Error(), details)
		return
	}

	var analysisErr *analyzing.AnalysisError
	if errors.As(err, &analysisErr) {
		var details map[string]any
		if analysisErr.AccountID != "" {
			details = map[string]any{"account_id": analysisErr.AccountID}
		}
		apiErrors.WriteError(w, analysisErr.Code, analysisErr.Error(), details)
		return
	}

	if errors.Is(err, domain.ErrNoRecords) {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
		return
	}

	logrus.WithError(err).Error("Erro não mapeado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
}
