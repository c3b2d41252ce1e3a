package instrumented

import (
	"time"

	"randstring/internal/lib/metrics"
	"randstring/pkg/randstring"
)

// Generator records prometheus metrics around another generator.
type Generator struct {
	next     randstring.Generator
	alphabet string
}

var _ randstring.Generator = (*Generator)(nil)

// New wraps next; alphabet is the label value the metrics are recorded under.
func New(next randstring.Generator, alphabet string) *Generator {
	return &Generator{next: next, alphabet: alphabet}
}

func (g *Generator) Generate(length int) (string, error) {
	start := time.Now()
	s, err := g.next.Generate(length)
	g.recordMetrics(length, err, start)
	return s, err
}

// Close closes the wrapped generator if it holds resources.
func (g *Generator) Close() error {
	if c, ok := g.next.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

func (g *Generator) recordMetrics(length int, err error, start time.Time) {
	duration := time.Since(start).Seconds()
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.GenerationsTotal.WithLabelValues(g.alphabet, status).Inc()
	metrics.GenerationDuration.WithLabelValues(g.alphabet).Observe(duration)
	if err == nil {
		metrics.GeneratedCharsTotal.WithLabelValues(g.alphabet).Add(float64(length))
	}
}
