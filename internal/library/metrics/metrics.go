package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	BorrowersRegistered prometheus.Counter
	BooksRegistered     prometheus.Counter
	BooksBorrowed       prometheus.Counter
	BooksReturned       prometheus.Counter
	BooksCheckedOut     prometheus.Gauge
	Rejections          *prometheus.CounterVec
	OperationDuration   *prometheus.HistogramVec
}

// New registers library metrics with reg; nil uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		BorrowersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "librarian_borrowers_registered_total",
			Help: "Total number of borrowers registered",
		}),
		BooksRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "librarian_books_registered_total",
			Help: "Total number of book copies registered",
		}),
		BooksBorrowed: factory.NewCounter(prometheus.CounterOpts{
			Name: "librarian_books_borrowed_total",
			Help: "Total number of successful borrows",
		}),
		BooksReturned: factory.NewCounter(prometheus.CounterOpts{
			Name: "librarian_books_returned_total",
			Help: "Total number of successful returns",
		}),
		BooksCheckedOut: factory.NewGauge(prometheus.GaugeOpts{
			Name: "librarian_books_checked_out",
			Help: "Copies checked out since process start (borrows minus returns)",
		}),
		Rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "librarian_operation_rejections_total",
			Help: "Business rule rejections by reason",
		}, []string{"reason"}),
		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "librarian_operation_duration_seconds",
			Help:    "Duration of library service operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
	}
}

func (m *Metrics) IncrementBorrowerRegistered() {
	m.BorrowersRegistered.Inc()
}

func (m *Metrics) IncrementBookRegistered() {
	m.BooksRegistered.Inc()
}

func (m *Metrics) IncrementBorrowed() {
	m.BooksBorrowed.Inc()
	m.BooksCheckedOut.Inc()
}

func (m *Metrics) IncrementReturned() {
	m.BooksReturned.Inc()
	m.BooksCheckedOut.Dec()
}

func (m *Metrics) IncrementRejection(reason string) {
	m.Rejections.WithLabelValues(reason).Inc()
}

func (m *Metrics) ObserveOperation(operation string, start time.Time) {
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
