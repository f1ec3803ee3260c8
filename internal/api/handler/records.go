package handler

import (
	"errors"
	"mime"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/business-advisor-api/infrastructure/loader/csvloader"
	"github.com/vfg2006/business-advisor-api/internal/domain"
	"github.com/vfg2006/business-advisor-api/internal/usecases/analyzing"
	"github.com/vfg2006/business-advisor-api/pkg/apiErrors"
)

// ImportRecords grava registros diários da conta. Aceita JSON ({"records": [...]}) ou text/csv.
func ImportRecords(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		records, ok := decodeRecords(w, r)
		if !ok {
			return
		}

		imported, err := service.ImportRecords(r.Context(), accountID, records)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{
			"account_id": accountID,
			"imported":   imported,
		})
	}
}

func decodeRecords(w http.ResponseWriter, r *http.Request) ([]domain.DailyRecord, bool) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "text/csv" {
		records, err := csvloader.Read(r.Body)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidRecord) || errors.Is(err, domain.ErrNoRecords) {
				writeServiceError(w, err)
			} else {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			}
			return nil, false
		}
		return records, true
	}

	var req RecordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
		return nil, false
	}

	records, err := domain.RecordsFromInput(req.Records)
	if err != nil {
		writeServiceError(w, err)
		return nil, false
	}

	return records, true
}
