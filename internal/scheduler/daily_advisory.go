package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-advisor-api/infrastructure/repository"
	"github.com/vfg2006/business-advisor-api/internal/config"
	"github.com/vfg2006/business-advisor-api/internal/domain"
	"github.com/vfg2006/business-advisor-api/internal/usecases/analyzing"
	"golang.org/x/sync/errgroup"
)

// DailyAdvisoryConfig representa a configuração do agendador de recomendações diárias
type DailyAdvisoryConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// SyncSummary resume uma execução sobre todas as contas ativas
type SyncSummary struct {
	Accounts  int `json:"accounts"`
	Generated int `json:"generated"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// DailyAdvisoryService gera, para cada conta ativa, o relatório de recomendações do dia
type DailyAdvisoryService struct {
	scheduler           *gocron.Scheduler
	config              DailyAdvisoryConfig
	accountRepo         repository.AccountRepository
	analyzer            analyzing.Analyzer
	now                 func() time.Time
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         SyncSummary
}

func NewDailyAdvisoryService(
	accountRepo repository.AccountRepository,
	analyzer analyzing.Analyzer,
	appConfig *config.Config,
) *DailyAdvisoryService {
	advisoryConfig := DailyAdvisoryConfig{
		CronSchedule:      appConfig.DailyAdvisorySync.CronSchedule,
		MaxConcurrentJobs: appConfig.DailyAdvisorySync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.DailyAdvisorySync.Enabled,
	}

	if advisoryConfig.MaxConcurrentJobs <= 0 {
		advisoryConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       advisoryConfig.CronSchedule,
		"max_concurrent_jobs": advisoryConfig.MaxConcurrentJobs,
		"sync_enabled":        advisoryConfig.SyncEnabled,
	}).Info("Configuração do agendador de recomendações diárias carregada")

	return &DailyAdvisoryService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      advisoryConfig,
		accountRepo: accountRepo,
		analyzer:    analyzer,
		now:         time.Now,
		baseCtx:     context.Background(),
	}
}

// Start agenda a execução diária; o agendador para quando ctx é cancelado
func (s *DailyAdvisoryService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recomendações diárias desabilitadas por configuração")
		return nil
	}

	s.syncMutex.Lock()
	s.baseCtx = ctx
	s.syncMutex.Unlock()

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recomendações diárias")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllAccounts(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recomendações diárias: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recomendações diárias")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllAccounts ignora a chamada se já houver uma execução em andamento
func (s *DailyAdvisoryService) syncAllAccounts(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de recomendações diárias já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()

	summary, err := s.RunForAllAccounts(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar recomendações diárias")
		return
	}

	s.syncMutex.Lock()
	s.lastSummary = summary
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"accounts":  summary.Accounts,
		"generated": summary.Generated,
		"skipped":   summary.Skipped,
		"failed":    summary.Failed,
	}).Info("Geração de recomendações diárias concluída")
}

// RunForAllAccounts analisa todas as contas ativas com no máximo MaxConcurrentJobs em paralelo.
// Falha de uma conta não interrompe as demais.
func (s *DailyAdvisoryService) RunForAllAccounts(ctx context.Context) (SyncSummary, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, true)
	if err != nil {
		return SyncSummary{}, fmt.Errorf("erro ao buscar contas ativas: %w", err)
	}

	summary := SyncSummary{Accounts: len(accounts)}
	if len(accounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para recomendações diárias")
		return summary, nil
	}

	date := s.now()

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.MaxConcurrentJobs)

	for _, account := range accounts {
		g.Go(func() error {
			outcome := s.processAccount(gctx, account, date)

			mu.Lock()
			defer mu.Unlock()
			switch outcome {
			case outcomeGenerated:
				summary.Generated++
			case outcomeSkipped:
				summary.Skipped++
			default:
				summary.Failed++
			}
			return nil
		})
	}

	_ = g.Wait()

	return summary, nil
}

type accountOutcome int

const (
	outcomeGenerated accountOutcome = iota
	outcomeSkipped
	outcomeFailed
)

func (s *DailyAdvisoryService) processAccount(ctx context.Context, account *domain.Account, date time.Time) accountOutcome {
	logger := logrus.WithFields(logrus.Fields{
		"account_id":   account.ID,
		"account_name": account.Name,
		"date":         date.Format(time.DateOnly),
	})

	report, err := s.analyzer.AnalyzeAccount(ctx, account.ID, date)
	if err != nil {
		if errors.Is(err, domain.ErrNoRecords) {
			logger.Warn("Conta sem registros diários. Pulando.")
			return outcomeSkipped
		}
		logger.WithError(err).Error("Erro ao gerar recomendações para conta")
		return outcomeFailed
	}

	logger.WithFields(logrus.Fields{
		"report_id":      report.ID,
		"profit_or_loss": report.Advisory.ProfitOrLoss,
		"alerts":         len(report.Advisory.Alerts),
	}).Info("Recomendações geradas para conta")

	return outcomeGenerated
}

// TriggerManualSync inicia uma execução em background e informa se ela foi disparada
func (s *DailyAdvisoryService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de recomendações diárias já em andamento, ignorando solicitação manual")
		return false
	}
	ctx := s.baseCtx
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual de recomendações diárias")
	go s.syncAllAccounts(ctx)

	return true
}

// GetStatus retorna o status atual do agendador
func (s *DailyAdvisoryService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_summary":      s.lastSummary,
	}
}
