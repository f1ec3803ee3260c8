package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-advisor-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-advisor-api/infrastructure/loader/csvloader"
	"github.com/vfg2006/business-advisor-api/infrastructure/repository"
	"github.com/vfg2006/business-advisor-api/internal/config"
	"github.com/vfg2006/business-advisor-api/internal/domain"
	"github.com/vfg2006/business-advisor-api/pkg/log"
	"github.com/vfg2006/business-advisor-api/pkg/utils"
)

// Importa um CSV de registros diários para uma conta, criando a conta se necessário.
//
//	go run ./infrastructure/migration/script -file data/business_data.csv -name "Loja Centro"
//	go run ./infrastructure/migration/script -file data/business_data.csv -account AbC123
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	file := flag.String("file", cfg.Loader.CSVPath, "arquivo CSV com os registros diários")
	accountID := flag.String("account", "", "ID de uma conta existente")
	name := flag.String("name", "", "nome da conta a criar quando -account não for informado")
	flag.Parse()

	log.Setup(cfg.App.LogLevel)
	logrus.Info("Iniciando script de importação...")

	if *accountID == "" && *name == "" {
		logrus.Error("informe -account ou -name")
		os.Exit(2)
	}

	records, err := csvloader.Load(*file)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao carregar CSV")
	}

	if err := domain.ValidateUniqueDates(records); err != nil {
		logrus.WithError(err).Fatal("ERRO no CSV")
	}

	ctx := context.Background()
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao banco de dados")
	}
	defer conn.Close()

	if err := conn.Migrate(ctx); err != nil {
		logrus.WithError(err).Fatal("ERRO ao aplicar schema")
	}

	startTime := time.Now()
	var importedTo string

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		id, err := resolveAccount(ctx, repository.NewAccountRepository(tx), *accountID, *name)
		if err != nil {
			return err
		}
		importedTo = id

		return repository.NewDailyRecordRepository(tx).SaveOrUpdate(ctx, id, records)
	})
	if err != nil {
		logrus.WithError(err).Fatal("ERRO na importação, transação revertida")
	}

	logrus.WithFields(logrus.Fields{
		"account_id": importedTo,
		"records":    len(records),
		"duration":   time.Since(startTime).String(),
	}).Info("Importação concluída com sucesso")
}

func resolveAccount(ctx context.Context, accountRepo repository.AccountRepository, accountID, name string) (string, error) {
	if accountID != "" {
		account, err := accountRepo.GetAccountByID(ctx, accountID)
		if err != nil {
			return "", err
		}
		if account == nil {
			return "", domain.ErrAccountNotFound
		}
		return account.ID, nil
	}

	id, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	account := &domain.Account{ID: id, Name: name, Active: true}
	if err := accountRepo.SaveOrUpdate(ctx, account); err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"account_id": id,
		"name":       name,
	}).Info("Conta criada")

	return id, nil
}
