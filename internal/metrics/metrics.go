package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TransactionsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "points_transactions_created_total",
		Help: "Total number of ledger transactions created, labelled by type.",
	}, []string{"type"})

	RedemptionsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "points_redemptions_processed_total",
		Help: "Total number of redemption requests marked as processed.",
	})

	SuspiciousToggled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "points_suspicious_toggled_total",
		Help: "Total number of suspicious flag changes on ledger transactions.",
	})

	ConflictRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "points_conflict_retries_total",
		Help: "Total number of retried check-then-write sections after a concurrency conflict.",
	})
)
