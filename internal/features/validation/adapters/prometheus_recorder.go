package adapters

import (
	"fmt"
	"time"

	"shipment-validator/internal/features/validation/domain"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder records validation runs. It implements ports.ValidationRecorder.
type PrometheusRecorder struct {
	runs        prometheus.Counter
	shipments   *prometheus.CounterVec
	anomalies   *prometheus.CounterVec
	runDuration prometheus.Histogram
}

// NewPrometheusRecorder registers the metrics on the default registerer.
func NewPrometheusRecorder() *PrometheusRecorder {
	return NewPrometheusRecorderWithRegisterer(prometheus.DefaultRegisterer)
}

// NewPrometheusRecorderWithRegisterer registers the metrics on registerer.
// Registering twice returns the already registered collectors.
func NewPrometheusRecorderWithRegisterer(registerer prometheus.Registerer) *PrometheusRecorder {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &PrometheusRecorder{
		runs: registerCounter(registerer, prometheus.CounterOpts{
			Name: "shipment_validator_runs_total",
			Help: "Total number of validation runs completed",
		}),
		shipments: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "shipment_validator_shipments_total",
			Help: "Total number of shipments validated, by verdict",
		}, []string{"status"}),
		anomalies: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "shipment_validator_anomalies_total",
			Help: "Total number of anomalies detected, by report category",
		}, []string{"category"}),
		runDuration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "shipment_validator_run_duration_seconds",
			Help:    "Duration of validation runs in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}),
	}
}

// ObserveRun records one completed run.
func (m *PrometheusRecorder) ObserveRun(report *domain.Report, duration time.Duration) {
	m.runs.Inc()
	m.runDuration.Observe(duration.Seconds())

	m.shipments.WithLabelValues(string(domain.ShipmentValid)).Add(float64(report.Summary.ValidShipments))
	m.shipments.WithLabelValues(string(domain.ShipmentInvalid)).Add(float64(report.Summary.InvalidShipments))

	for _, c := range domain.Categories {
		if n := report.AnomalySummary.Count(c); n > 0 {
			m.anomalies.WithLabelValues(string(c)).Add(float64(n))
		}
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}
