// Package analyzing orquestra o pipeline de recomendações sobre dados persistidos
package analyzing

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-advisor-api/infrastructure/repository"
	"github.com/vfg2006/business-advisor-api/internal/domain"
	"github.com/vfg2006/business-advisor-api/internal/usecases/pipeline"
	"github.com/vfg2006/business-advisor-api/pkg/apiErrors"
	"github.com/vfg2006/business-advisor-api/pkg/utils"
)

// comparisonWindow é a quantidade de dias usada na comparação: hoje e ontem
const comparisonWindow = 2

// DefaultReportLimit limita a listagem de relatórios quando nenhum limite é informado
const DefaultReportLimit = 30

type Analyzer interface {
	// AnalyzeRecords executa o pipeline sobre registros informados, sem persistir nada
	AnalyzeRecords(ctx context.Context, records []domain.DailyRecord) (*domain.PipelineResult, error)
	// AnalyzeAccount executa o pipeline com os registros da conta até a data e salva o relatório
	AnalyzeAccount(ctx context.Context, accountID string, date time.Time) (*domain.AdvisoryReport, error)
	ImportRecords(ctx context.Context, accountID string, records []domain.DailyRecord) (int, error)
	CreateAccount(ctx context.Context, name string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
	GetLatestReport(ctx context.Context, accountID string) (*domain.AdvisoryReport, error)
	ListReports(ctx context.Context, accountID string, limit int) ([]*domain.AdvisoryReport, error)
}

type Service struct {
	accountRepository        repository.AccountRepository
	dailyRecordRepository    repository.DailyRecordRepository
	advisoryReportRepository repository.AdvisoryReportRepository
	generateID               func() (string, error)
}

func NewService(
	accountRepo repository.AccountRepository,
	dailyRecordRepo repository.DailyRecordRepository,
	advisoryReportRepo repository.AdvisoryReportRepository,
) Analyzer {
	return &Service{
		accountRepository:        accountRepo,
		dailyRecordRepository:    dailyRecordRepo,
		advisoryReportRepository: advisoryReportRepo,
		generateID:               utils.GenerateReportID,
	}
}

func (s *Service) AnalyzeRecords(ctx context.Context, records []domain.DailyRecord) (*domain.PipelineResult, error) {
	result, err := pipeline.Run(records)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"records":        len(records),
		"profit_or_loss": result.Recommendation.ProfitOrLoss,
		"alerts":         len(result.Recommendation.Alerts),
	}).Info("analyzing: análise de registros concluída")

	return result, nil
}

func (s *Service) AnalyzeAccount(ctx context.Context, accountID string, date time.Time) (*domain.AdvisoryReport, error) {
	if err := s.ensureAccount(ctx, accountID); err != nil {
		return nil, err
	}

	records, err := s.dailyRecordRepository.GetLatest(ctx, accountID, date, comparisonWindow)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("analyzing: erro ao buscar registros diários")
		return nil, NewAnalysisError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Falha ao buscar registros diários")
	}

	if len(records) == 0 {
		return nil, NewAnalysisError(domain.ErrNoRecords, apiErrors.ErrNotFound, accountID, "Nenhum registro diário até "+date.Format(time.DateOnly))
	}

	result, err := pipeline.Run(records)
	if err != nil {
		return nil, NewAnalysisError(err, apiErrors.ErrInvalidRecord, accountID, "")
	}

	reportID, err := s.generateID()
	if err != nil {
		return nil, NewAnalysisError(ErrGenerateID, apiErrors.ErrInternalServer, accountID, err.Error())
	}

	reportDate, err := records[len(records)-1].ParsedDate()
	if err != nil {
		return nil, NewAnalysisError(err, apiErrors.ErrInvalidRecord, accountID, "")
	}

	report := &domain.AdvisoryReport{
		ID:          reportID,
		AccountID:   accountID,
		Date:        reportDate,
		Metrics:     *result.Processed,
		Advisory:    *result.Recommendation,
		RecordCount: len(records),
	}

	if err := s.advisoryReportRepository.Save(ctx, report); err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("analyzing: erro ao salvar relatório")
		return nil, NewAnalysisError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Falha ao salvar relatório")
	}

	logrus.WithFields(logrus.Fields{
		"account_id":     accountID,
		"report_id":      report.ID,
		"date":           report.Date.Format(time.DateOnly),
		"profit_or_loss": report.Advisory.ProfitOrLoss,
		"alerts":         len(report.Advisory.Alerts),
	}).Info("analyzing: relatório de recomendações gerado")

	return report, nil
}

func (s *Service) ImportRecords(ctx context.Context, accountID string, records []domain.DailyRecord) (int, error) {
	if err := s.ensureAccount(ctx, accountID); err != nil {
		return 0, err
	}

	if err := domain.ValidateRecords(records); err != nil {
		code := apiErrors.ErrInvalidRecord
		if errors.Is(err, domain.ErrNoRecords) {
			code = apiErrors.ErrMissingRequiredData
		}
		return 0, NewAnalysisError(err, code, accountID, "")
	}

	// o upsert em lote não aceita a mesma data duas vezes
	if err := domain.ValidateUniqueDates(records); err != nil {
		return 0, NewAnalysisError(err, apiErrors.ErrInvalidRecord, accountID, "")
	}

	if err := s.dailyRecordRepository.SaveOrUpdate(ctx, accountID, records); err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("analyzing: erro ao salvar registros diários")
		return 0, NewAnalysisError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Falha ao salvar registros diários")
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"records":    len(records),
	}).Info("analyzing: registros diários importados")

	return len(records), nil
}

func (s *Service) CreateAccount(ctx context.Context, name string) (*domain.Account, error) {
	if name == "" {
		return nil, NewAnalysisError(ErrNameRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewAnalysisError(ErrGenerateID, apiErrors.ErrInternalServer, "", err.Error())
	}

	account := &domain.Account{
		ID:     id,
		Name:   name,
		Active: true,
	}

	if err := s.accountRepository.SaveOrUpdate(ctx, account); err != nil {
		logrus.WithError(err).Error("analyzing: erro ao criar conta")
		return nil, NewAnalysisError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao criar conta")
	}

	return account, nil
}

func (s *Service) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	accounts, err := s.accountRepository.ListAccounts(ctx, false)
	if err != nil {
		logrus.WithError(err).Error("analyzing: erro ao listar contas")
		return nil, NewAnalysisError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", "Falha ao listar contas")
	}

	return accounts, nil
}

func (s *Service) GetLatestReport(ctx context.Context, accountID string) (*domain.AdvisoryReport, error) {
	if err := s.ensureAccount(ctx, accountID); err != nil {
		return nil, err
	}

	report, err := s.advisoryReportRepository.GetLatestByAccountID(ctx, accountID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("analyzing: erro ao buscar relatório")
		return nil, NewAnalysisError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Falha ao buscar relatório")
	}

	if report == nil {
		return nil, NewAnalysisError(ErrReportNotFound, apiErrors.ErrNotFound, accountID, "")
	}

	return report, nil
}

func (s *Service) ListReports(ctx context.Context, accountID string, limit int) ([]*domain.AdvisoryReport, error) {
	if err := s.ensureAccount(ctx, accountID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultReportLimit
	}

	reports, err := s.advisoryReportRepository.ListByAccountID(ctx, accountID, limit)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("analyzing: erro ao listar relatórios")
		return nil, NewAnalysisError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Falha ao listar relatórios")
	}

	return reports, nil
}

func (s *Service) ensureAccount(ctx context.Context, accountID string) error {
	if accountID == "" {
		return NewAnalysisError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	account, err := s.accountRepository.GetAccountByID(ctx, accountID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("analyzing: erro ao buscar conta")
		return NewAnalysisError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Falha ao buscar conta")
	}

	if account == nil {
		return NewAnalysisError(ErrAccountNotFound, apiErrors.ErrNotFound, accountID, "")
	}

	return nil
}
