package validator

import (
	"strconv"

	ac "github.com/cordialsys/addrcheck"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	validations *prometheus.CounterVec
	detections  *prometheus.CounterVec
}

func newMetrics(registerer prometheus.Registerer) *metrics {
	m := &metrics{
		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "addrcheck",
				Name:      "validations_total",
				Help:      "Number of address validations by chain and outcome",
			},
			[]string{"chain", "valid", "kind"},
		),
		detections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "addrcheck",
				Name:      "detections_total",
				Help:      "Number of chain detections by detected chain",
			},
			[]string{"chain"},
		),
	}
	m.validations = register(registerer, m.validations)
	m.detections = register(registerer, m.detections)
	return m
}

// register returns the collector already registered under the same name, if any, so that
// several validators can share one registry.
func register(registerer prometheus.Registerer, counter *prometheus.CounterVec) *prometheus.CounterVec {
	if err := registerer.Register(counter); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
		panic(err)
	}
	return counter
}

func (m *metrics) observeValidation(result *ac.ValidationResult) {
	if m == nil {
		return
	}
	m.validations.WithLabelValues(string(result.Chain), strconv.FormatBool(result.IsValid), result.ErrorKind).Inc()
}

func (m *metrics) observeDetection(chain ac.ChainType) {
	if m == nil {
		return
	}
	label := string(chain)
	if chain == ac.Unknown {
		label = "unknown"
	}
	m.detections.WithLabelValues(label).Inc()
}
