package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-advisor-api/pkg/apiErrors"
)

// Pinger verifica a disponibilidade de uma dependência
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde com o horário atual; com db informado, também verifica o banco
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				logrus.WithError(err).Warn("healthcheck: banco de dados indisponível")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Banco de dados indisponível", nil)
				return
			}
		}

		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
