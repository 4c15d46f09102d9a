package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	TokensIssued         prometheus.Counter
	ProgramsCreated      prometheus.Counter
	ClientsCreated       prometheus.Counter
	EnrollmentsCompleted prometheus.Counter
}

// New creates and registers all metrics on the given registerer. Tests pass a
// fresh prometheus.NewRegistry so repeated construction never collides.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TokensIssued: factory.NewCounter(prometheus.CounterOpts{
			Name: "health_registry_tokens_issued_total",
			Help: "Total number of access tokens issued",
		}),
		ProgramsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "health_registry_programs_created_total",
			Help: "Total number of health programs created",
		}),
		ClientsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "health_registry_clients_created_total",
			Help: "Total number of clients registered",
		}),
		EnrollmentsCompleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "health_registry_enrollments_completed_total",
			Help: "Total number of successful enrollment requests",
		}),
	}
}

// IncrementTokensIssued increments the issued-token counter by 1.
func (m *Metrics) IncrementTokensIssued() {
	m.TokensIssued.Inc()
}

// IncrementProgramsCreated increments the programs-created counter by 1.
func (m *Metrics) IncrementProgramsCreated() {
	m.ProgramsCreated.Inc()
}

// IncrementClientsCreated increments the clients-created counter by 1.
func (m *Metrics) IncrementClientsCreated() {
	m.ClientsCreated.Inc()
}

// IncrementEnrollmentsCompleted increments the enrollments counter by 1.
func (m *Metrics) IncrementEnrollmentsCompleted() {
	m.EnrollmentsCompleted.Inc()
}
