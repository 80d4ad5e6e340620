package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	PapersUploaded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "papers_uploaded_total",
			Help: "Total number of papers stored.",
		},
	)

	GeneratorCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generator_calls_total",
			Help: "Total generator calls by analysis kind.",
		},
		[]string{"kind"},
	)

	GeneratorFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generator_failures_total",
			Help: "Total failed generator calls by analysis kind.",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(PapersUploaded, GeneratorCalls, GeneratorFailures)
}
