package tx

import (
	"context"
	"errors"

	"dispatch/pkg/retrier"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	trmcontext "github.com/avito-tech/go-transaction-manager/trm/context"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
)

// Manager инкапсулирует логику управления транзакциями.
// Внешняя единица работы, упавшая на конкуренции за блокировки, повторяется целиком.
type Manager struct {
	internal *manager.Manager
	retrier  retrier.Retrier
	level    pgx.TxIsoLevel
}

type Option func(*Manager)

// WithRetrier enables whole-transaction retries on contention errors.
func WithRetrier(r retrier.Retrier) Option {
	return func(m *Manager) {
		m.retrier = r
	}
}

func WithIsoLevel(level pgx.TxIsoLevel) Option {
	return func(m *Manager) {
		m.level = level
	}
}

// New creates a transaction manager. Row locks (SELECT ... FOR UPDATE) carry
// the invariants, so READ COMMITTED is the default.
func New(db pgxv5.Transactional, opts ...Option) *Manager {
	m := &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		level:    pgx.ReadCommitted,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) execWithIsoLevel(
	ctx context.Context,
	level pgx.TxIsoLevel,
	fn func(ctx context.Context) error,
) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}

func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	// nested Do joins the outer transaction, only the outermost call may restart it
	if m.retrier == nil || trmcontext.DefaultManager.Default(ctx) != nil {
		return m.execWithIsoLevel(ctx, m.level, fn)
	}

	return m.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return m.execWithIsoLevel(ctx, m.level, fn)
	})
}

// IsContention reports whether err is a lock wait, deadlock or serialization failure.
func IsContention(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable:
		return true
	default:
		return false
	}
}
