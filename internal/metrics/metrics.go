package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DatasetRows = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "loginsight_dataset_rows",
		Help: "Number of prepared login events held in memory.",
	})

	DatasetRowsDropped = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "loginsight_dataset_rows_dropped",
		Help: "Number of source rows dropped at load because the program was missing.",
	})

	UnmappedMonths = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loginsight_unmapped_months_total",
		Help: "Events whose month name had no Spanish translation, labelled by the raw name.",
	}, []string{"month"})

	ViewRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loginsight_view_requests_total",
		Help: "Dashboard views and aggregations computed, labelled by name.",
	}, []string{"view"})

	AggregationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "loginsight_aggregation_duration_ms",
		Help:    "Time spent computing a view or aggregation in milliseconds.",
		Buckets: []float64{0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500},
	}, []string{"view"})

	SnapshotsEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "loginsight_snapshots_enqueued_total",
		Help: "Snapshot export jobs placed on the queue.",
	})

	SnapshotsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "loginsight_snapshots_dropped_total",
		Help: "Snapshot export jobs rejected because the queue was full.",
	})

	SnapshotExports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loginsight_snapshot_exports_total",
		Help: "Finished snapshot exports, labelled by status.",
	}, []string{"status"})

	QueueUtilization = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "loginsight_export_queue_utilization_ratio",
		Help: "Current snapshot export queue utilization (0-1).",
	})
)
