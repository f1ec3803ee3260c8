package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-advisor-api/infrastructure/repository/mocks"
	"github.com/vfg2006/business-advisor-api/internal/config"
	"github.com/vfg2006/business-advisor-api/internal/domain"
	"github.com/vfg2006/business-advisor-api/internal/usecases/analyzing"
	analyzingmocks "github.com/vfg2006/business-advisor-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/business-advisor-api/pkg/apiErrors"
	"github.com/vfg2006/business-advisor-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

func newTestDailyAdvisoryService(t *testing.T, enabled bool) (*DailyAdvisoryService, *mocks.MockAccountRepository, *analyzingmocks.MockAnalyzer) {
	ctrl := gomock.NewController(t)

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockAnalyzer := analyzingmocks.NewMockAnalyzer(ctrl)

	cfg := &config.Config{
		DailyAdvisorySync: config.DailyAdvisorySync{
			CronSchedule:      "0 7 * * *",
			MaxConcurrentJobs: 2,
			Enabled:           enabled,
		},
	}

	service := NewDailyAdvisoryService(mockAccountRepo, mockAnalyzer, cfg)
	service.now = func() time.Time { return time.Date(2024, 1, 16, 7, 0, 0, 0, time.UTC) }

	return service, mockAccountRepo, mockAnalyzer
}

func TestDailyAdvisoryService_RunForAllAccounts(t *testing.T) {
	ctx := context.Background()
	referenceDate := time.Date(2024, 1, 16, 7, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		accounts []*domain.Account
		setup    func(analyzer *analyzingmocks.MockAnalyzer)
		want     SyncSummary
	}{
		{
			name:     "nenhuma conta ativa",
			accounts: []*domain.Account{},
			setup:    func(*analyzingmocks.MockAnalyzer) {},
			want:     SyncSummary{},
		},
		{
			name: "contas com resultados diferentes não interrompem as demais",
			accounts: []*domain.Account{
				{ID: "ACC001", Name: "Loja A", Active: true},
				{ID: "ACC002", Name: "Loja B", Active: true},
				{ID: "ACC003", Name: "Loja C", Active: true},
			},
			setup: func(analyzer *analyzingmocks.MockAnalyzer) {
				analyzer.EXPECT().
					AnalyzeAccount(gomock.Any(), "ACC001", referenceDate).
					Return(&domain.AdvisoryReport{ID: "R1", AccountID: "ACC001"}, nil)

				analyzer.EXPECT().
					AnalyzeAccount(gomock.Any(), "ACC002", referenceDate).
					Return(nil, analyzing.NewAnalysisError(domain.ErrNoRecords, apiErrors.ErrNotFound, "ACC002", ""))

				analyzer.EXPECT().
					AnalyzeAccount(gomock.Any(), "ACC003", referenceDate).
					Return(nil, errors.New("connection refused"))
			},
			want: SyncSummary{Accounts: 3, Generated: 1, Skipped: 1, Failed: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, analyzer := newTestDailyAdvisoryService(t, true)

			accountRepo.EXPECT().ListAccounts(ctx, true).Return(tt.accounts, nil)
			tt.setup(analyzer)

			summary, err := service.RunForAllAccounts(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, summary)
		})
	}
}

func TestDailyAdvisoryService_RunForAllAccounts_ErroAoListarContas(t *testing.T) {
	service, accountRepo, _ := newTestDailyAdvisoryService(t, true)

	accountRepo.EXPECT().ListAccounts(gomock.Any(), true).Return(nil, errors.New("timeout"))

	_, err := service.RunForAllAccounts(context.Background())
	assert.Error(t, err)
}

func TestDailyAdvisoryService_StartDesabilitado(t *testing.T) {
	service, _, _ := newTestDailyAdvisoryService(t, false)

	require.NoError(t, service.Start(context.Background()))
	assert.Len(t, service.scheduler.Jobs(), 0)
}

func TestDailyAdvisoryService_StartCronInvalido(t *testing.T) {
	service, _, _ := newTestDailyAdvisoryService(t, true)
	service.config.CronSchedule = "isso não é cron"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, service.Start(ctx))
}

func TestDailyAdvisoryService_TriggerManualSync(t *testing.T) {
	t.Run("ignora quando já existe execução em andamento", func(t *testing.T) {
		service, _, _ := newTestDailyAdvisoryService(t, true)
		service.syncRunning = true

		assert.False(t, service.TriggerManualSync())
	})

	t.Run("executa em background e registra o resumo", func(t *testing.T) {
		service, accountRepo, analyzer := newTestDailyAdvisoryService(t, true)

		done := make(chan struct{})
		accountRepo.EXPECT().ListAccounts(gomock.Any(), true).Return([]*domain.Account{{ID: "ACC001", Active: true}}, nil)
		analyzer.EXPECT().
			AnalyzeAccount(gomock.Any(), "ACC001", gomock.Any()).
			DoAndReturn(func(context.Context, string, time.Time) (*domain.AdvisoryReport, error) {
				defer close(done)
				return &domain.AdvisoryReport{ID: "R1"}, nil
			})

		assert.True(t, service.TriggerManualSync())

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("execução manual não foi disparada")
		}

		assert.Eventually(t, func() bool {
			status := service.GetStatus()
			return status["sync_running"] == false &&
				status["last_sync_summary"] == SyncSummary{Accounts: 1, Generated: 1}
		}, 2*time.Second, 10*time.Millisecond)
	})
}

type ctxKey string

func TestDailyAdvisoryService_TriggerManualSyncUsaContextoDoStart(t *testing.T) {
	t.Run("execução manual herda o contexto do Start", func(t *testing.T) {
		service, accountRepo, _ := newTestDailyAdvisoryService(t, true)

		ctx, cancel := context.WithCancel(context.WithValue(context.Background(), ctxKey("origem"), "start"))
		defer cancel()

		done := make(chan string, 1)
		accountRepo.EXPECT().ListAccounts(gomock.Any(), true).
			DoAndReturn(func(ctx context.Context, _ bool) ([]*domain.Account, error) {
				origin, _ := ctx.Value(ctxKey("origem")).(string)
				done <- origin
				return nil, nil
			})

		require.NoError(t, service.Start(ctx))
		assert.True(t, service.TriggerManualSync())

		select {
		case origin := <-done:
			assert.Equal(t, "start", origin)
		case <-time.After(2 * time.Second):
			t.Fatal("execução manual não foi disparada")
		}
	})

	t.Run("Start e disparo manual concorrentes", func(t *testing.T) {
		service, accountRepo, _ := newTestDailyAdvisoryService(t, true)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		done := make(chan struct{})
		accountRepo.EXPECT().ListAccounts(gomock.Any(), true).
			DoAndReturn(func(context.Context, bool) ([]*domain.Account, error) {
				close(done)
				return nil, nil
			})

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, service.Start(ctx))
		}()

		assert.True(t, service.TriggerManualSync())
		wg.Wait()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("execução manual não foi disparada")
		}
	})
}

func TestDailyAdvisoryService_GetStatus(t *testing.T) {
	service, _, _ := newTestDailyAdvisoryService(t, true)

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 7 * * *", status["sync_cron"])
	assert.Equal(t, 2, status["sync_max_concurrent"])
	assert.Equal(t, false, status["sync_running"])
}
