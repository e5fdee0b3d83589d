package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vsinha/allocator/pkg/domain/entities"
	"github.com/vsinha/allocator/pkg/infrastructure/events"
)

const namespace = "allocator"

// Recorder turns order.allocated events into Prometheus counters
type Recorder struct {
	registry    *prometheus.Registry
	orders      prometheus.Counter
	requested   *prometheus.CounterVec
	fulfilled   *prometheus.CounterVec
	backordered *prometheus.CounterVec
}

// NewRecorder creates a recorder backed by its own registry
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		orders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_processed_total",
			Help:      "Orders passed through allocation.",
		}),
		requested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "units_requested_total",
			Help:      "Units requested by order lines.",
		}, []string{"product"}),
		fulfilled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "units_fulfilled_total",
			Help:      "Units filled from on-hand stock.",
		}, []string{"product"}),
		backordered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "units_backordered_total",
			Help:      "Units recorded as backordered.",
		}, []string{"product"}),
	}
	r.registry.MustRegister(r.orders, r.requested, r.fulfilled, r.backordered)
	return r
}

var _ events.EventHandler = (*Recorder)(nil)

// Registry exposes the recorder's collectors
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) CanHandle(eventType string) bool {
	return eventType == events.OrderAllocatedEvent
}

func (r *Recorder) Handle(event events.Event) error {
	payload, ok := event.Data().(events.OrderAllocated)
	if !ok {
		return errors.Errorf("unexpected payload %T for %s", event.Data(), event.Type())
	}
	r.Observe(payload.Result)
	return nil
}

// Observe records one allocation result
func (r *Recorder) Observe(result entities.AllocationResult) {
	r.orders.Inc()
	for i, product := range entities.Catalog() {
		label := string(product)
		r.requested.WithLabelValues(label).Add(float64(result.Requested[i]))
		r.fulfilled.WithLabelValues(label).Add(float64(result.Fulfilled[i]))
		r.backordered.WithLabelValues(label).Add(float64(result.Backordered[i]))
	}
}

// WriteTextfile dumps the registry in the Prometheus text format
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return errors.Wrapf(err, "writing metrics to %s", path)
	}
	return nil
}
