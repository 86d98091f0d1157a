// Package metrics holds the prometheus collectors of the data operator.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/latenitesite/mattermost-mobile/models"
)

const (
	namespace = "mobile"
	subsystem = "data_operator"
)

// CommitMetrics counts committed rows and failed commits. A nil
// *CommitMetrics is valid and records nothing.
type CommitMetrics struct {
	rows     *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewCommitMetrics creates the collectors and registers them on reg. A nil
// reg leaves them unregistered.
func NewCommitMetrics(reg prometheus.Registerer) *CommitMetrics {
	factory := promauto.With(reg)

	return &CommitMetrics{
		rows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "committed_rows_total",
				Help:      "Total number of committed rows by table and operation",
			},
			[]string{"table", "operation"},
		),
		failures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "commit_failures_total",
				Help:      "Total number of batches that failed to commit by scope",
			},
			[]string{"scope"},
		),
	}
}

// ObserveCommit counts the rows of a committed batch.
func (m *CommitMetrics) ObserveCommit(descriptors []models.Descriptor) {
	if m == nil {
		return
	}
	for _, d := range descriptors {
		m.rows.WithLabelValues(d.Table.String(), d.Operation.String()).Inc()
	}
}

// ObserveFailure counts a batch that was not committed.
func (m *CommitMetrics) ObserveFailure(scope models.Scope) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(scope.String()).Inc()
}
