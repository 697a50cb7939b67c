package status

import (
	"strings"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector exports a Registry as prometheus gauges
// Metrics appear as they are registered, so the collector is unchecked (Describe sends nothing)
type Collector struct {
	reg       *Registry
	namespace string
}

// NewCollector wraps reg, metric names are namespace_<key with separators as underscores>
func NewCollector(reg *Registry, namespace string) *Collector {
	return &Collector{reg: reg, namespace: namespace}
}

func (c *Collector) Describe(chan<- *prometheus.Desc) {}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.reg.Ints.Range(func(k string, v *atomic.Int64) {
		c.emit(ch, k, float64(v.Load()), nil, nil)
	})
	c.reg.Floats.Range(func(k string, v *AtomicFloat) {
		c.emit(ch, k, v.Load(), nil, nil)
	})
	c.reg.Bools.Range(func(k string, v *atomic.Bool) {
		val := 0.0
		if v.Load() {
			val = 1
		}
		c.emit(ch, k, val, nil, nil)
	})
	// Strings become info gauges carrying the label
	c.reg.Strings.Range(func(k string, v *AtomicString) {
		c.emit(ch, k+"_info", 1, []string{"value"}, []string{v.Load()})
	})
}

func (c *Collector) emit(ch chan<- prometheus.Metric, key string, val float64, labels, values []string) {
	desc := prometheus.NewDesc(c.MetricName(key), "kickoff status metric "+key, labels, nil)
	m, err := prometheus.NewConstMetric(desc, prometheus.GaugeValue, val, values...)
	if err != nil {
		ch <- prometheus.NewInvalidMetric(desc, err)
		return
	}
	ch <- m
}

// MetricName maps a registry key to a valid prometheus name
func (c *Collector) MetricName(key string) string {
	var b strings.Builder
	b.Grow(len(c.namespace) + 1 + len(key))
	if c.namespace != "" {
		b.WriteString(c.namespace)
		b.WriteByte('_')
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
