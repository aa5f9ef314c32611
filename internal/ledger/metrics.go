package ledger

import "github.com/prometheus/client_golang/prometheus"

// Metrics are the Prometheus collectors exported by the ledger.
var Metrics = []prometheus.Collector{
	conflictRetries,
	driftedAccounts,
}

var conflictRetries = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "ledger_conflict_retries_total",
		Help: "How many atomic units were run again after a write conflict.",
	},
)

var driftedAccounts = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "ledger_balance_drift_accounts",
		Help: "Number of accounts whose stored balance differed from the sum of their transactions at the last reconciliation.",
	},
)
