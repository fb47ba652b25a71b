package testutils

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// CountingCounter is an Int64Counter that keeps what was added to it.
type CountingCounter struct {
	noop.Int64Counter

	mu         sync.Mutex
	count      int64
	attributes []attribute.Set
}

func (c *CountingCounter) Add(_ context.Context, incr int64, opts ...metric.AddOption) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count += incr
	c.attributes = append(c.attributes, metric.NewAddConfig(opts).Attributes())
}

func (c *CountingCounter) Count() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Attribute returns the string value of key on the i-th Add call.
func (c *CountingCounter) Attribute(i int, key attribute.Key) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i >= len(c.attributes) {
		return ""
	}
	value, _ := c.attributes[i].Value(key)
	return value.AsString()
}

type countingMeter struct {
	noop.Meter
	counter *CountingCounter
}

func (m countingMeter) Int64Counter(string, ...metric.Int64CounterOption) (metric.Int64Counter, error) {
	return m.counter, nil
}

type countingMeterProvider struct {
	noop.MeterProvider
	meter countingMeter
}

func (p countingMeterProvider) Meter(string, ...metric.MeterOption) metric.Meter {
	return p.meter
}

// NewCountingMeterProvider returns a provider whose every Int64Counter is the returned counter.
func NewCountingMeterProvider() (metric.MeterProvider, *CountingCounter) {
	counter := &CountingCounter{}
	return countingMeterProvider{meter: countingMeter{counter: counter}}, counter
}
