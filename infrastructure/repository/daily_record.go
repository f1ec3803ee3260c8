package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/business-advisor-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-advisor-api/internal/domain"
)

const (
	dailyRecordsTable = "daily_records dr"
)

type DailyRecordRepository interface {
	SaveOrUpdate(ctx context.Context, accountID string, records []domain.DailyRecord) error
	// GetLatest retorna até limit registros com data <= until, em ordem cronológica
	GetLatest(ctx context.Context, accountID string, until time.Time, limit int) ([]domain.DailyRecord, error)
}

type dailyRecordRepository struct {
	conn postgres.Queryer
}

func NewDailyRecordRepository(conn postgres.Queryer) DailyRecordRepository {
	return &dailyRecordRepository{
		conn: conn,
	}
}

func (r *dailyRecordRepository) SaveOrUpdate(ctx context.Context, accountID string, records []domain.DailyRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("daily_records").
		Columns("account_id", "date", "sales", "cost", "number_of_customers").
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		query = query.Values(
			accountID,
			record.Date,
			record.Sales,
			record.Cost,
			record.CustomerCount,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (account_id, date) DO UPDATE SET
			sales = EXCLUDED.sales,
			cost = EXCLUDED.cost,
			number_of_customers = EXCLUDED.number_of_customers,
			updated_at = NOW()
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *dailyRecordRepository) GetLatest(ctx context.Context, accountID string, until time.Time, limit int) ([]domain.DailyRecord, error) {
	query, args, err := squirrel.
		Select("dr.date, dr.sales, dr.cost, dr.number_of_customers").
		From(dailyRecordsTable).
		Where(squirrel.Eq{"dr.account_id": accountID}).
		Where(squirrel.LtOrEq{"dr.date": until.Format(time.DateOnly)}).
		OrderBy("dr.date DESC").
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

	records := make([]domain.DailyRecord, 0, limit)
	for rows.Next() {
		var (
			record domain.DailyRecord
			date   time.Time
		)

		if err := rows.Scan(&date, &record.Sales, &record.Cost, &record.CustomerCount); err != nil {
			return nil, fmt.Errorf("erro ao escanear registro diário: %w", err)
		}

		record.Date = date.Format(time.DateOnly)
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	// a query traz do mais recente para o mais antigo
	slices.Reverse(records)

	return records, nil
}
