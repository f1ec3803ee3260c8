package repository

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/vfg2006/business-advisor-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-advisor-api/internal/config"
	"github.com/vfg2006/business-advisor-api/internal/domain"
	"github.com/vfg2006/business-advisor-api/pkg/log"
)

// startPostgres sobe um PostgreSQL descartável e aplica o schema.
// O teste é ignorado com -short ou quando o Docker não está disponível.
func startPostgres(t *testing.T) *postgres.Connection {
	t.Helper()

	if testing.Short() {
		t.Skip("teste de integração ignorado com -short")
	}

	log.SetupTestLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.Run(ctx, "postgres:16-alpine",
		testcontainers.WithExposedPorts("5432/tcp"),
		testcontainers.WithEnv(map[string]string{
			"POSTGRES_USER":     "advisor",
			"POSTGRES_PASSWORD": "advisor",
			"POSTGRES_DB":       "advisor",
		}),
		testcontainers.WithWaitStrategy(
			wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(60*time.Second),
		),
	)
	if err != nil {
		t.Skipf("docker indisponível: %v", err)
	}

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cleanupCancel()
		_ = container.Terminate(cleanupCtx)
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	conn, err := postgres.NewConnection(ctx, config.Database{
		Driver:         "postgres",
		DSN:            fmt.Sprintf("postgres://advisor:advisor@%s:%s/advisor?sslmode=disable", host, port.Port()),
		MaxOpenConns:   5,
		MaxIdleConns:   2,
		ConnectTimeout: 30 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, conn.Migrate(ctx))
	// Migrate deve ser idempotente
	require.NoError(t, conn.Migrate(ctx))

	return conn
}

func TestRepositories_Postgres(t *testing.T) {
	conn := startPostgres(t)
	ctx := context.Background()

	accounts := NewAccountRepository(conn)
	records := NewDailyRecordRepository(conn)
	reports := NewAdvisoryReportRepository(conn)

	t.Run("contas", func(t *testing.T) {
		require.NoError(t, accounts.SaveOrUpdate(ctx, &domain.Account{ID: "ACC001", Name: "Loja Centro", Active: true}))
		require.NoError(t, accounts.SaveOrUpdate(ctx, &domain.Account{ID: "ACC002", Name: "Loja Antiga", Active: false}))

		acc, err := accounts.GetAccountByID(ctx, "ACC001")
		require.NoError(t, err)
		require.NotNil(t, acc)
		assert.Equal(t, "Loja Centro", acc.Name)

		missing, err := accounts.GetAccountByID(ctx, "NOPE")
		require.NoError(t, err)
		assert.Nil(t, missing)

		active, err := accounts.ListAccounts(ctx, true)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, "ACC001", active[0].ID)

		all, err := accounts.ListAccounts(ctx, false)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("registros diários em ordem cronológica", func(t *testing.T) {
		require.NoError(t, records.SaveOrUpdate(ctx, "ACC001", []domain.DailyRecord{
			{Date: "2024-01-01", Sales: 1000, Cost: 500, CustomerCount: 10},
			{Date: "2024-01-02", Sales: 1200, Cost: 600, CustomerCount: 12},
			{Date: "2024-01-03", Sales: 900, Cost: 950, CustomerCount: 5},
		}))

		// reimportar a mesma data atualiza o registro
		require.NoError(t, records.SaveOrUpdate(ctx, "ACC001", []domain.DailyRecord{
			{Date: "2024-01-02", Sales: 1250, Cost: 600, CustomerCount: 12},
		}))

		until := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
		got, err := records.GetLatest(ctx, "ACC001", until, 2)
		require.NoError(t, err)

		assert.Equal(t, []domain.DailyRecord{
			{Date: "2024-01-01", Sales: 1000, Cost: 500, CustomerCount: 10},
			{Date: "2024-01-02", Sales: 1250, Cost: 600, CustomerCount: 12},
		}, got)
	})

	t.Run("valores são gravados sem perda de precisão", func(t *testing.T) {
		require.NoError(t, accounts.SaveOrUpdate(ctx, &domain.Account{ID: "ACC003", Name: "Loja Precisa", Active: true}))

		stored := []domain.DailyRecord{
			{Date: "2024-02-01", Sales: 10, Cost: 10, CustomerCount: 1},
			{Date: "2024-02-02", Sales: 100.125, Cost: 45.0001, CustomerCount: 8},
			{Date: "2024-02-03", Sales: 1.5e12, Cost: 0.1, CustomerCount: 3_000_000_000},
		}
		require.NoError(t, records.SaveOrUpdate(ctx, "ACC003", stored))

		got, err := records.GetLatest(ctx, "ACC003", time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC), 3)
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("relatórios preservam métricas infinitas", func(t *testing.T) {
		older := &domain.AdvisoryReport{
			ID:        "REPORT000001",
			AccountID: "ACC001",
			Date:      time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			Metrics:   domain.MetricsSnapshot{Profit: 650, TodayCAC: 50, YesterdayCAC: 50},
			Advisory: domain.AdvisoryResult{
				ProfitOrLoss:    domain.StatusProfit,
				Alerts:          []string{},
				Recommendations: []string{},
			},
			RecordCount: 2,
		}
		newer := &domain.AdvisoryReport{
			ID:        "REPORT000002",
			AccountID: "ACC001",
			Date:      time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			Metrics:   domain.MetricsSnapshot{Profit: -50, TodayCAC: math.Inf(1), YesterdayCAC: 50},
			Advisory: domain.AdvisoryResult{
				ProfitOrLoss:    domain.StatusLoss,
				Alerts:          []string{"Negative profit detected.", "CAC increased by inf%."},
				Recommendations: []string{"Reduce costs if profit is negative."},
			},
			RecordCount: 2,
		}

		require.NoError(t, reports.Save(ctx, older))
		require.NoError(t, reports.Save(ctx, newer))
		assert.False(t, newer.CreatedAt.IsZero())

		latest, err := reports.GetLatestByAccountID(ctx, "ACC001")
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, "REPORT000002", latest.ID)
		assert.True(t, math.IsInf(latest.Metrics.TodayCAC, 1))
		assert.Equal(t, newer.Advisory, latest.Advisory)

		list, err := reports.ListByAccountID(ctx, "ACC001", 10)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "REPORT000002", list[0].ID)
		assert.Equal(t, "REPORT000001", list[1].ID)

		none, err := reports.GetLatestByAccountID(ctx, "ACC002")
		require.NoError(t, err)
		assert.Nil(t, none)
	})
}
