package analyzing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-advisor-api/infrastructure/repository/mocks"
	"github.com/vfg2006/business-advisor-api/internal/domain"
	"github.com/vfg2006/business-advisor-api/pkg/apiErrors"
	"github.com/vfg2006/business-advisor-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

type serviceMocks struct {
	accounts *mocks.MockAccountRepository
	records  *mocks.MockDailyRecordRepository
	reports  *mocks.MockAdvisoryReportRepository
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		accounts: mocks.NewMockAccountRepository(ctrl),
		records:  mocks.NewMockDailyRecordRepository(ctrl),
		reports:  mocks.NewMockAdvisoryReportRepository(ctrl),
	}

	service := NewService(m.accounts, m.records, m.reports).(*Service)
	service.generateID = func() (string, error) { return "REPORT000001", nil }

	return service, m
}

func assertAnalysisCode(t *testing.T, err error, code string) {
	t.Helper()

	var analysisErr *AnalysisError
	require.True(t, errors.As(err, &analysisErr), "esperado AnalysisError, recebido %v", err)
	assert.Equal(t, code, analysisErr.Code)
}

var activeAccount = &domain.Account{ID: "ACC001", Name: "Loja A", Active: true}

func TestService_AnalyzeAccount(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	t.Run("gera e salva o relatório com os dois últimos registros", func(t *testing.T) {
		service, m := newTestService(t)

		m.accounts.EXPECT().GetAccountByID(ctx, "ACC001").Return(activeAccount, nil)
		m.records.EXPECT().GetLatest(ctx, "ACC001", date, 2).Return([]domain.DailyRecord{
			{Date: "2024-01-01", Sales: 2500, Cost: 1500, CustomerCount: 100},
			{Date: "2024-01-02", Sales: 3000, Cost: 2000, CustomerCount: 100},
		}, nil)

		var saved *domain.AdvisoryReport
		m.reports.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, report *domain.AdvisoryReport) error {
			saved = report
			return nil
		})

		report, err := service.AnalyzeAccount(ctx, "ACC001", date)
		require.NoError(t, err)
		require.NotNil(t, report)

		assert.Same(t, saved, report)
		assert.Equal(t, "REPORT000001", report.ID)
		assert.Equal(t, "ACC001", report.AccountID)
		assert.Equal(t, date, report.Date)
		assert.Equal(t, 2, report.RecordCount)
		assert.Equal(t, 1000.0, report.Metrics.Profit)
		assert.Equal(t, 33.33, report.Metrics.CACIncreasePct)
		assert.Equal(t, domain.StatusProfit, report.Advisory.ProfitOrLoss)
		assert.Equal(t, []string{"CAC increased by 33.33%."}, report.Advisory.Alerts)
	})

	t.Run("data do relatório é a do último registro encontrado", func(t *testing.T) {
		service, m := newTestService(t)

		m.accounts.EXPECT().GetAccountByID(ctx, "ACC001").Return(activeAccount, nil)
		m.records.EXPECT().GetLatest(ctx, "ACC001", date, 2).Return([]domain.DailyRecord{
			{Date: "2023-12-20", Sales: 100, Cost: 150, CustomerCount: 10},
		}, nil)
		m.reports.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		report, err := service.AnalyzeAccount(ctx, "ACC001", date)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2023, 12, 20, 0, 0, 0, 0, time.UTC), report.Date)
		assert.Equal(t, domain.StatusLoss, report.Advisory.ProfitOrLoss)
	})

	t.Run("conta inexistente", func(t *testing.T) {
		service, m := newTestService(t)

		m.accounts.EXPECT().GetAccountByID(ctx, "NOPE").Return(nil, nil)

		_, err := service.AnalyzeAccount(ctx, "NOPE", date)
		assert.ErrorIs(t, err, ErrAccountNotFound)
		assertAnalysisCode(t, err, apiErrors.ErrNotFound)
	})

	t.Run("conta sem registros", func(t *testing.T) {
		service, m := newTestService(t)

		m.accounts.EXPECT().GetAccountByID(ctx, "ACC001").Return(activeAccount, nil)
		m.records.EXPECT().GetLatest(ctx, "ACC001", date, 2).Return([]domain.DailyRecord{}, nil)

		_, err := service.AnalyzeAccount(ctx, "ACC001", date)
		assert.ErrorIs(t, err, domain.ErrNoRecords)
		assertAnalysisCode(t, err, apiErrors.ErrNotFound)
	})

	t.Run("falha ao salvar relatório", func(t *testing.T) {
		service, m := newTestService(t)

		m.accounts.EXPECT().GetAccountByID(ctx, "ACC001").Return(activeAccount, nil)
		m.records.EXPECT().GetLatest(ctx, "ACC001", date, 2).Return([]domain.DailyRecord{
			{Date: "2024-01-02", Sales: 1, Cost: 1, CustomerCount: 1},
		}, nil)
		m.reports.EXPECT().Save(ctx, gomock.Any()).Return(errors.New("connection reset"))

		_, err := service.AnalyzeAccount(ctx, "ACC001", date)
		assert.ErrorIs(t, err, ErrDatabaseOperation)
		assertAnalysisCode(t, err, apiErrors.ErrDatabaseOperation)
	})

	t.Run("ID da conta obrigatório", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.AnalyzeAccount(ctx, "", date)
		assert.ErrorIs(t, err, ErrAccountIDRequired)
	})
}

func TestService_AnalyzeRecords(t *testing.T) {
	service, _ := newTestService(t)

	result, err := service.AnalyzeRecords(context.Background(), []domain.DailyRecord{
		{Date: "2024-01-01", Sales: 100, Cost: 150, CustomerCount: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, -50.0, result.Processed.Profit)

	_, err = service.AnalyzeRecords(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrNoRecords)
}

func TestService_ImportRecords(t *testing.T) {
	ctx := context.Background()
	records := []domain.DailyRecord{
		{Date: "2024-01-01", Sales: 2500, Cost: 1500, CustomerCount: 100},
		{Date: "2024-01-02", Sales: 3000, Cost: 2000, CustomerCount: 100},
	}

	t.Run("importa registros válidos", func(t *testing.T) {
		service, m := newTestService(t)

		m.accounts.EXPECT().GetAccountByID(ctx, "ACC001").Return(activeAccount, nil)
		m.records.EXPECT().SaveOrUpdate(ctx, "ACC001", records).Return(nil)

		imported, err := service.ImportRecords(ctx, "ACC001", records)
		require.NoError(t, err)
		assert.Equal(t, 2, imported)
	})

	t.Run("registro inválido não chega ao banco", func(t *testing.T) {
		service, m := newTestService(t)

		m.accounts.EXPECT().GetAccountByID(ctx, "ACC001").Return(activeAccount, nil)

		_, err := service.ImportRecords(ctx, "ACC001", []domain.DailyRecord{{Date: "2024-01-01", Sales: -1}})
		assert.ErrorIs(t, err, domain.ErrInvalidRecord)
		assertAnalysisCode(t, err, apiErrors.ErrInvalidRecord)
	})

	t.Run("data repetida não chega ao banco", func(t *testing.T) {
		service, m := newTestService(t)

		m.accounts.EXPECT().GetAccountByID(ctx, "ACC001").Return(activeAccount, nil)

		_, err := service.ImportRecords(ctx, "ACC001", []domain.DailyRecord{
			{Date: "2024-01-01", Sales: 2500, Cost: 1500, CustomerCount: 100},
			{Date: "2024-01-01", Sales: 3000, Cost: 2000, CustomerCount: 100},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidRecord)
		assertAnalysisCode(t, err, apiErrors.ErrInvalidRecord)

		var validationErr *domain.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, 1, validationErr.Index)
	})

	t.Run("lista vazia", func(t *testing.T) {
		service, m := newTestService(t)

		m.accounts.EXPECT().GetAccountByID(ctx, "ACC001").Return(activeAccount, nil)

		_, err := service.ImportRecords(ctx, "ACC001", nil)
		assert.ErrorIs(t, err, domain.ErrNoRecords)
		assertAnalysisCode(t, err, apiErrors.ErrMissingRequiredData)
	})
}

func TestService_GetLatestReport(t *testing.T) {
	ctx := context.Background()

	t.Run("relatório encontrado", func(t *testing.T) {
		service, m := newTestService(t)
		expected := &domain.AdvisoryReport{ID: "R1", AccountID: "ACC001"}

		m.accounts.EXPECT().GetAccountByID(ctx, "ACC001").Return(activeAccount, nil)
		m.reports.EXPECT().GetLatestByAccountID(ctx, "ACC001").Return(expected, nil)

		report, err := service.GetLatestReport(ctx, "ACC001")
		require.NoError(t, err)
		assert.Equal(t, expected, report)
	})

	t.Run("nenhum relatório", func(t *testing.T) {
		service, m := newTestService(t)

		m.accounts.EXPECT().GetAccountByID(ctx, "ACC001").Return(activeAccount, nil)
		m.reports.EXPECT().GetLatestByAccountID(ctx, "ACC001").Return(nil, nil)

		_, err := service.GetLatestReport(ctx, "ACC001")
		assert.ErrorIs(t, err, ErrReportNotFound)
		assertAnalysisCode(t, err, apiErrors.ErrNotFound)
	})
}

func TestService_ListReports(t *testing.T) {
	ctx := context.Background()

	t.Run("limite padrão", func(t *testing.T) {
		service, m := newTestService(t)

		m.accounts.EXPECT().GetAccountByID(ctx, "ACC001").Return(activeAccount, nil)
		m.reports.EXPECT().ListByAccountID(ctx, "ACC001", DefaultReportLimit).Return([]*domain.AdvisoryReport{}, nil)

		reports, err := service.ListReports(ctx, "ACC001", 0)
		require.NoError(t, err)
		assert.Empty(t, reports)
	})

	t.Run("limite informado", func(t *testing.T) {
		service, m := newTestService(t)

		m.accounts.EXPECT().GetAccountByID(ctx, "ACC001").Return(activeAccount, nil)
		m.reports.EXPECT().ListByAccountID(ctx, "ACC001", 5).Return([]*domain.AdvisoryReport{{ID: "R1"}}, nil)

		reports, err := service.ListReports(ctx, "ACC001", 5)
		require.NoError(t, err)
		assert.Len(t, reports, 1)
	})
}

func TestService_CreateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("cria conta ativa", func(t *testing.T) {
		service, m := newTestService(t)

		m.accounts.EXPECT().SaveOrUpdate(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, account *domain.Account) error {
			assert.Len(t, account.ID, 6)
			assert.Equal(t, "Loja Centro", account.Name)
			assert.True(t, account.Active)
			return nil
		})

		account, err := service.CreateAccount(ctx, "Loja Centro")
		require.NoError(t, err)
		assert.Equal(t, "Loja Centro", account.Name)
	})

	t.Run("nome obrigatório", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreateAccount(ctx, "")
		assert.ErrorIs(t, err, ErrNameRequired)
		assertAnalysisCode(t, err, apiErrors.ErrMissingRequiredData)
	})
}

func TestService_ListAccounts(t *testing.T) {
	service, m := newTestService(t)
	ctx := context.Background()

	m.accounts.EXPECT().ListAccounts(ctx, false).Return([]*domain.Account{activeAccount}, nil)

	accounts, err := service.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*domain.Account{activeAccount}, accounts)
}
