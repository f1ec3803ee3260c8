package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

// schemaStatements cria as tabelas usadas pelos repositórios, se ainda não existirem
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id         VARCHAR(12) PRIMARY KEY,
		name       TEXT        NOT NULL,
		active     BOOLEAN     NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS daily_records (
		id                  BIGSERIAL        PRIMARY KEY,
		account_id          VARCHAR(12)      NOT NULL REFERENCES accounts(id),
		date                DATE             NOT NULL,
		sales               DOUBLE PRECISION NOT NULL,
		cost                DOUBLE PRECISION NOT NULL,
		number_of_customers BIGINT           NOT NULL,
		created_at          TIMESTAMPTZ      NOT NULL DEFAULT NOW(),
		updated_at          TIMESTAMPTZ      NOT NULL DEFAULT NOW(),
		UNIQUE (account_id, date)
	)`,
	// bancos criados com NUMERIC(14, 2) arredondavam os valores na gravação
	`ALTER TABLE daily_records
		ALTER COLUMN sales TYPE DOUBLE PRECISION,
		ALTER COLUMN cost TYPE DOUBLE PRECISION,
		ALTER COLUMN number_of_customers TYPE BIGINT`,
	`CREATE TABLE IF NOT EXISTS advisory_reports (
		id           VARCHAR(12) PRIMARY KEY,
		account_id   VARCHAR(12) NOT NULL REFERENCES accounts(id),
		date         DATE        NOT NULL,
		metrics      JSONB       NOT NULL,
		advisory     JSONB       NOT NULL,
		record_count INTEGER     NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_advisory_reports_account_date ON advisory_reports (account_id, date DESC, created_at DESC)`,
}

// Migrate aplica o schema dentro de uma única transação
func (c *Connection) Migrate(ctx context.Context) error {
	err := c.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, statement := range schemaStatements {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				return fmt.Errorf("erro ao aplicar schema: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("statements", len(schemaStatements)).Info("Schema do PostgreSQL aplicado")
	return nil
}
