package jobs

import (
	"context"
	"time"

	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/cashflow"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/ledger"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/notify"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
)

// Reconciliation compares stored balances with the sum of their transactions.
// Drifted accounts are logged and exported by the ledger.
func Reconciliation(l *ledger.Ledger, interval time.Duration) Job {
	return Job{
		Name:     "reconciliation",
		Interval: interval,
		Run: func(ctx context.Context) error {
			_, err := l.Reconcile(ctx)
			return err
		},
	}
}

// Digest mails the notifications due within days. The job is disabled when
// the mailer is not configured.
func Digest(e *cashflow.Engine, m *notify.Mailer, today func() types.Date, days int, interval time.Duration) Job {
	job := Job{
		Name:     "digest",
		Interval: interval,
		Run: func(ctx context.Context) error {
			date := today()
			notifications, err := e.Notifications(ctx, date, days)
			if err != nil {
				return err
			}

			_, err = m.SendDigest(ctx, date, notifications)
			return err
		},
	}

	if !m.Enabled() {
		job.Run = nil
	}

	return job
}
