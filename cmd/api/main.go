package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-advisor-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-advisor-api/infrastructure/repository"
	"github.com/vfg2006/business-advisor-api/internal/api"
	"github.com/vfg2006/business-advisor-api/internal/api/handler"
	"github.com/vfg2006/business-advisor-api/internal/config"
	"github.com/vfg2006/business-advisor-api/internal/scheduler"
	"github.com/vfg2006/business-advisor-api/internal/usecases/analyzing"
	"github.com/vfg2006/business-advisor-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-advisor-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	dailyRecordRepo := repository.NewDailyRecordRepository(pgConn)
	advisoryReportRepo := repository.NewAdvisoryReportRepository(pgConn)

	authenticator := authenticating.NewService(cfg.Auth)
	analyzer := analyzing.NewService(accountRepo, dailyRecordRepo, advisoryReportRepo)

	dailyAdvisoryService := scheduler.NewDailyAdvisoryService(accountRepo, analyzer, cfg)
	if err := dailyAdvisoryService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recomendações diárias")
	} else {
		logrus.Info("Agendador de recomendações diárias iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyzer,
		authenticator,
		pgConn,
		handler.CronJobServices{
			DailyAdvisoryService: dailyAdvisoryService,
		},
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource permite encontrar o .env ao rodar com go run de qualquer diretório
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	_ = os.Chdir(path.Dir(file))
}

// pgconn cria a conexão com o banco e aplica o schema quando configurado
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if dbConfig.AutoMigrate {
		if err := conn.Migrate(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar schema no PostgreSQL")
		}
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
