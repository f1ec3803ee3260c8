package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/business-advisor-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-advisor-api/internal/domain"
)

const (
	accountsTable = "accounts a"
)

type AccountRepository interface {
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, onlyActive bool) ([]*domain.Account, error)
	SaveOrUpdate(ctx context.Context, account *domain.Account) error
}

type accountRepository struct {
	conn postgres.Queryer
}

func NewAccountRepository(conn postgres.Queryer) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (a *accountRepository) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select("a.id, a.name, a.active, a.created_at, a.updated_at").
		From(accountsTable).
		Where(squirrel.Eq{"a.id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	acc := &domain.Account{}
	err = a.conn.QueryRowContext(ctx, accountsSQL, accountsArgs...).Scan(
		&acc.ID,
		&acc.Name,
		&acc.Active,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return acc, nil
}

func (a *accountRepository) ListAccounts(ctx context.Context, onlyActive bool) ([]*domain.Account, error) {
	builder := squirrel.
		Select("a.id, a.name, a.active, a.created_at, a.updated_at").
		From(accountsTable).
		OrderBy("a.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if onlyActive {
		builder = builder.Where(squirrel.Eq{"a.active": true})
	}

	accountsSQL, accountsArgs, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := a.conn.QueryContext(ctx, accountsSQL, accountsArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		acc := &domain.Account{}
		if err := rows.Scan(&acc.ID, &acc.Name, &acc.Active, &acc.CreatedAt, &acc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear conta: %w", err)
		}
		accounts = append(accounts, acc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

func (a *accountRepository) SaveOrUpdate(ctx context.Context, account *domain.Account) error {
	query := squirrel.StatementBuilder.
		Insert("accounts").
		Columns("id", "name", "active").
		Values(account.ID, account.Name, account.Active).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				active = EXCLUDED.active,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = a.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}
