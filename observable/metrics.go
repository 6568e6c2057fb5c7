package observable

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	setPrometheusMetrics sync.Once

	setEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "observable_set",
			Name:      "events_total",
			Help:      "Total number of events dispatched by observable sets.",
		},
		[]string{"name", "operation"})
	setElements = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "observable_set",
			Name:      "elements",
			Help:      "Number of elements currently stored in observable sets.",
		},
		[]string{"name"})
)

// RegisterMetrics exposes the events dispatched by s and its size through
// Prometheus, labeled with name. The returned handles can be passed to Off
// to stop collecting. Clones of s are not instrumented; call RegisterMetrics
// on them with a name of their own.
func RegisterMetrics[T comparable](s *Set[T], name string) []Handle {
	setPrometheusMetrics.Do(func() {
		prometheus.MustRegister(setEventsTotal, setElements)
	})

	elements := setElements.WithLabelValues(name)
	elements.Set(float64(s.Size()))
	handles := make([]Handle, 0, operationCount)
	for _, op := range Operations() {
		events := setEventsTotal.WithLabelValues(name, op.String())
		handles = append(handles, s.On(op, func(_ T, _ Operation, set *Set[T]) {
			events.Inc()
			elements.Set(float64(set.Size()))
		}, ExcludeFromClones()))
	}
	return handles
}
