package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NotifyChannel is the channel the campaign_jobs trigger publishes the ids
// of pending jobs on.
const NotifyChannel = "campaign_jobs"

// Listener implements port.JobEventSource with LISTEN/NOTIFY. It holds one
// pool connection while listening.
type Listener struct {
	pool    *pgxpool.Pool
	channel string
	logger  *slog.Logger
}

// NewListener returns a listener on NotifyChannel.
func NewListener(pool *pgxpool.Pool, logger *slog.Logger) *Listener {
	return &Listener{pool: pool, channel: NotifyChannel, logger: logger}
}

// Listen blocks delivering job ids to handle until ctx is done or the
// connection fails.
func (l *Listener) Listen(ctx context.Context, handle func(jobID string)) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire listen connection: %w", err)
	}
	defer conn.Release()

	ident := pgx.Identifier{l.channel}.Sanitize()
	if _, err = conn.Exec(ctx, "LISTEN "+ident); err != nil {
		return fmt.Errorf("listen %s: %w", l.channel, err)
	}
	l.logger.Info("listening for job events", slog.String("channel", l.channel))

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("wait for notification: %w", err)
		}
		if n.Payload == "" {
			continue
		}
		handle(n.Payload)
	}
}
