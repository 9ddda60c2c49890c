package observability

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveDB_NoRowsIsNotAnError(t *testing.T) {
	p := NewProm(prometheus.NewRegistry())

	err := p.ObserveDB("students.update", func() error { return pgx.ErrNoRows })
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("got %v, want ErrNoRows passed through", err)
	}

	if got := testutil.CollectAndCount(p.DbErrorsTotal); got != 0 {
		t.Fatalf("no-rows counted as a db error, %d series recorded", got)
	}
	// latency is still observed, under status ok
	if got := testutil.CollectAndCount(p.DbQueryDuration); got != 1 {
		t.Fatalf("got %d duration series, want 1", got)
	}
}

func TestObserveDB_RealErrorsStillCounted(t *testing.T) {
	p := NewProm(prometheus.NewRegistry())

	dup := &pgconn.PgError{Code: "23505"}
	_ = p.ObserveDB("users.create", func() error { return dup })

	if got := testutil.ToFloat64(p.DbErrorsTotal.WithLabelValues("users.create", "unique_violation")); got != 1 {
		t.Fatalf("got %v unique_violation errors, want 1", got)
	}
}
