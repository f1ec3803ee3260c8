package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-advisor-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDailyAdvisory = "daily-advisory"
	CronJobTypeAll           = "all"
)

// CronJob é um agendador que pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DailyAdvisoryService CronJob
}

func (s CronJobServices) byType() map[string]CronJob {
	jobs := map[string]CronJob{}
	if s.DailyAdvisoryService != nil {
		jobs[CronJobTypeDailyAdvisory] = s.DailyAdvisoryService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Execução manual de cron job solicitada")

		jobs := services.byType()
		started := map[string]bool{}

		switch cronType {
		case CronJobTypeAll:
			for name, job := range jobs {
				started[name] = job.TriggerManualSync()
			}
		default:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: daily-advisory, all", nil)
				return
			}
			started[cronType] = job.TriggerManualSync()
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job solicitada",
			"type":    cronType,
			"started": started,
		})
	}
}

// GetCronStatus retorna o status de uma cron job, ou de todas com o tipo "all"
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		jobs := services.byType()

		if cronType != CronJobTypeAll {
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: daily-advisory, all", nil)
				return
			}
			writeJSON(w, http.StatusOK, job.GetStatus())
			return
		}

		status := map[string]any{}
		for name, job := range jobs {
			status[name] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
