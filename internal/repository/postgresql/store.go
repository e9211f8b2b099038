package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"jewelry-production-service/internal/logger"
	"jewelry-production-service/internal/service"
)

// querier is the subset shared by *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store hands out repositories bound either to the pool or to one open transaction.
type Store struct {
	pool *pgxpool.Pool
	q    querier
	inTx bool
	log  *logger.Logger
}

func NewStore(pool *pgxpool.Pool, log *logger.Logger) *Store {
	return &Store{pool: pool, q: pool, log: log}
}

func (s *Store) Jobs() service.JobRepository                 { return &JobRepository{q: s.q} }
func (s *Store) Transactions() service.TransactionRepository { return &TransactionRepository{q: s.q} }
func (s *Store) Users() service.UserRepository               { return &UserRepository{q: s.q} }

// InTx runs fn inside a read-committed transaction. Nested calls reuse the open transaction.
func (s *Store) InTx(ctx context.Context, fn func(tx service.Store) error) error {
	if s.inTx {
		return fn(s)
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return mapError("begin", err)
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && !errors.Is(rErr, pgx.ErrTxClosed) {
			s.log.Warn("rollback failed", "err", rErr)
		}
	}()

	if err := fn(&Store{pool: s.pool, q: tx, inTx: true, log: s.log}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return mapError("commit", err)
	}
	return nil
}

// rowScanner is satisfied by pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
