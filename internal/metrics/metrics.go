package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	AdmissionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chatscan_admissions_total",
			Help: "Total number of rate limit admission checks",
		},
	)

	AdmissionsAllowed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chatscan_admissions_allowed_total",
			Help: "Total number of allowed requests",
		},
	)

	AdmissionsBlocked = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chatscan_admissions_blocked_total",
			Help: "Total number of requests rejected over quota",
		},
	)

	ExtractionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chatscan_extractions_total",
			Help: "Total number of images sent for extraction",
		},
	)

	ExtractionErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chatscan_extraction_errors_total",
			Help: "Total number of failed extraction calls",
		},
	)
)

func Register() {
	prometheus.MustRegister(
		AdmissionsTotal,
		AdmissionsAllowed,
		AdmissionsBlocked,
		ExtractionsTotal,
		ExtractionErrors,
	)
}
