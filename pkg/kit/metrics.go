package kit

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	labelOp      = "op"
	labelOutcome = "outcome"

	operationsMetric = "inventory_operations_total"
	recordsMetric    = "inventory_records"
)

type Metrics struct {
	Operations *prometheus.CounterVec
	Records    prometheus.Gauge
}

func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: operationsMetric,
				Help: "Inventory store operations by outcome",
			},
			[]string{labelOp, labelOutcome},
		),
		Records: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: recordsMetric,
				Help: "Records currently held in the store",
			},
		),
	}

	reg.MustRegister(m.Operations, m.Records)
	return m
}

// Observe counts one operation and refreshes the size gauge. A nil *Metrics
// is a no-op so callers can run without a registry.
func (m *Metrics) Observe(op, outcome string, size int) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(op, outcome).Inc()
	m.Records.Set(float64(size))
}

type OpCount struct {
	Op      string
	Outcome string
	Count   float64
}

// OperationCounts reads the operation counter back out of g, sorted by op
// then outcome.
func OperationCounts(g prometheus.Gatherer) ([]OpCount, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	var out []OpCount
	for _, mf := range families {
		if mf.GetName() != operationsMetric {
			continue
		}
		for _, metric := range mf.GetMetric() {
			c := OpCount{Count: metric.GetCounter().GetValue()}
			for _, lp := range metric.GetLabel() {
				switch lp.GetName() {
				case labelOp:
					c.Op = lp.GetValue()
				case labelOutcome:
					c.Outcome = lp.GetValue()
				}
			}
			out = append(out, c)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Op != out[j].Op {
			return out[i].Op < out[j].Op
		}
		return out[i].Outcome < out[j].Outcome
	})
	return out, nil
}
