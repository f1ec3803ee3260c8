package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/business-advisor-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-advisor-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	advisoryReportsTable = "advisory_reports ar"
	advisoryReportFields = "ar.id, ar.account_id, ar.date, ar.metrics, ar.advisory, ar.record_count, ar.created_at"
)

type AdvisoryReportRepository interface {
	Save(ctx context.Context, report *domain.AdvisoryReport) error
	GetLatestByAccountID(ctx context.Context, accountID string) (*domain.AdvisoryReport, error)
	ListByAccountID(ctx context.Context, accountID string, limit int) ([]*domain.AdvisoryReport, error)
}

type advisoryReportRepository struct {
	conn postgres.Queryer
}

func NewAdvisoryReportRepository(conn postgres.Queryer) AdvisoryReportRepository {
	return &advisoryReportRepository{
		conn: conn,
	}
}

func (r *advisoryReportRepository) Save(ctx context.Context, report *domain.AdvisoryReport) error {
	metricsJSON, err := json.Marshal(report.Metrics)
	if err != nil {
		return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
	}

	advisoryJSON, err := json.Marshal(report.Advisory)
	if err != nil {
		return fmt.Errorf("erro ao serializar recomendações para JSON: %w", err)
	}

	sqlQuery, args, err := squirrel.StatementBuilder.
		Insert("advisory_reports").
		Columns("id", "account_id", "date", "metrics", "advisory", "record_count").
		Values(
			report.ID,
			report.AccountID,
			report.Date.Format(time.DateOnly),
			metricsJSON,
			advisoryJSON,
			report.RecordCount,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&report.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *advisoryReportRepository) GetLatestByAccountID(ctx context.Context, accountID string) (*domain.AdvisoryReport, error) {
	query, args, err := squirrel.
		Select(advisoryReportFields).
		From(advisoryReportsTable).
		Where(squirrel.Eq{"ar.account_id": accountID}).
		OrderBy("ar.date DESC", "ar.created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	report, err := r.scanReport(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear relatório: %w", err)
	}

	return report, nil
}

func (r *advisoryReportRepository) ListByAccountID(ctx context.Context, accountID string, limit int) ([]*domain.AdvisoryReport, error) {
	query, args, err := squirrel.
		Select(advisoryReportFields).
		From(advisoryReportsTable).
		Where(squirrel.Eq{"ar.account_id": accountID}).
		OrderBy("ar.date DESC", "ar.created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	reports := make([]*domain.AdvisoryReport, 0)
	for rows.Next() {
		report, err := r.scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear relatórios: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *advisoryReportRepository) scanReport(row scanner) (*domain.AdvisoryReport, error) {
	report := &domain.AdvisoryReport{}
	var metricsJSON, advisoryJSON []byte

	err := row.Scan(
		&report.ID,
		&report.AccountID,
		&report.Date,
		&metricsJSON,
		&advisoryJSON,
		&report.RecordCount,
		&report.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(metricsJSON, &report.Metrics); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON de metrics: %w", err)
	}

	if err := json.Unmarshal(advisoryJSON, &report.Advisory); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON de advisory: %w", err)
	}

	return report, nil
}
