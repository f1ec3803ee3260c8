package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-advisor-api/internal/domain"
	"github.com/vfg2006/business-advisor-api/internal/usecases/analyzing"
	"github.com/vfg2006/business-advisor-api/pkg/apiErrors"
	"github.com/vfg2006/business-advisor-api/pkg/utils"
)

type RecordsRequest struct {
	Records []domain.DailyRecordInput `json:"records"`
}

// AnalyzeRecords executa o pipeline sobre os registros enviados, sem persistir
func AnalyzeRecords(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecordsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		records, err := domain.RecordsFromInput(req.Records)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		result, err := service.AnalyzeRecords(r.Context(), records)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// AnalyzeAccount gera e salva o relatório da conta para a data (?date=YYYY-MM-DD, padrão hoje)
func AnalyzeAccount(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		date, err := utils.ParseDateOrToday(r.URL.Query().Get("date"), time.Now())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		report, err := service.AnalyzeAccount(r.Context(), accountID, date)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, report)
	}
}

func GetLatestReport(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		report, err := service.GetLatestReport(r.Context(), accountID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

// ListReports lista os relatórios da conta, mais recentes primeiro (?limit=N)
func ListReports(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		limit := 0
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", nil)
				return
			}
			limit = parsed
		}

		reports, err := service.ListReports(r.Context(), accountID, limit)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"reports":    len(reports),
		}).Debug("Relatórios listados")

		writeJSON(w, http.StatusOK, reports)
	}
}
