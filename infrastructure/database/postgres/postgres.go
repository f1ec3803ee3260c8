package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/cenkalti/backoff/v5"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-advisor-api/internal/config"
)

type Conn interface {
	Queryer
	BeginTx(context.Context, *sql.TxOptions) (*sql.Tx, error)
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}

type Connection struct {
	*sql.DB
}

// NewConnection abre a conexão e repete o ping com backoff exponencial até cfg.ConnectTimeout
func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	notify := func(err error, next time.Duration) {
		logrus.WithError(err).WithField("next_attempt_in", next.String()).Warn("PostgreSQL indisponível, tentando novamente")
	}

	_, err = backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, db.PingContext(ctx)
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(cfg.ConnectTimeout),
		backoff.WithNotify(notify),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// RunInTransaction run a query in the transaction
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return rbErr
		}
		return err
	}

	return tx.Commit()
}
