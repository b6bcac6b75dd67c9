package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loggraph/loggraph/schema"
)

// buildResult is a test helper producing a one-kind result.
func buildResult(kind schema.SourceKind, times []float64, fields map[string][]*float64) *schema.QueryResult {
	series := schema.NewKindSeries()
	series.Times = times
	for name, values := range fields {
		series.Fields[name] = values
	}
	return &schema.QueryResult{Kinds: map[schema.SourceKind]*schema.KindSeries{kind: series}}
}

// optional is a test helper for building optional value slices.
func optional(vs ...float64) []*float64 {
	out := make([]*float64, len(vs))
	for i := range vs {
		v := vs[i]
		out[i] = &v
	}
	return out
}

// TestFingerprintStable verifies identical content collides.
func TestFingerprintStable(t *testing.T) {
	a := buildResult(schema.SensorKind, []float64{1, 2}, map[string][]*float64{
		"temperature": optional(21.5, 21.6),
		"humidity":    optional(55, 56),
	})
	b := buildResult(schema.SensorKind, []float64{1, 2}, map[string][]*float64{
		"humidity":    optional(55, 56),
		"temperature": optional(21.5, 21.6),
	})

	assert.Equal(t, Fingerprint(a), Fingerprint(b))
}

// TestFingerprintDiffers verifies content changes change the token.
func TestFingerprintDiffers(t *testing.T) {
	base := buildResult(schema.SensorKind, []float64{1, 2}, map[string][]*float64{
		"temperature": optional(21.5, 21.6),
	})

	valueChanged := buildResult(schema.SensorKind, []float64{1, 2}, map[string][]*float64{
		"temperature": optional(21.5, 21.7),
	})
	timeChanged := buildResult(schema.SensorKind, []float64{1, 3}, map[string][]*float64{
		"temperature": optional(21.5, 21.6),
	})
	kindChanged := buildResult(schema.SerialKind, []float64{1, 2}, map[string][]*float64{
		"temperature": optional(21.5, 21.6),
	})

	assert.NotEqual(t, Fingerprint(base), Fingerprint(valueChanged))
	assert.NotEqual(t, Fingerprint(base), Fingerprint(timeChanged))
	assert.NotEqual(t, Fingerprint(base), Fingerprint(kindChanged))
}

// TestFingerprintAbsentMarker verifies absent values differ from any number.
func TestFingerprintAbsentMarker(t *testing.T) {
	v := 0.0
	withValue := buildResult(schema.SerialKind, []float64{1}, map[string][]*float64{
		"niveau_utile": {&v},
	})
	withAbsent := buildResult(schema.SerialKind, []float64{1}, map[string][]*float64{
		"niveau_utile": {nil},
	})

	assert.NotEqual(t, Fingerprint(withValue), Fingerprint(withAbsent))
}

// TestFingerprintEmpty verifies empty results fingerprint consistently.
func TestFingerprintEmpty(t *testing.T) {
	a := &schema.QueryResult{Kinds: map[schema.SourceKind]*schema.KindSeries{}}
	b := &schema.QueryResult{Kinds: map[schema.SourceKind]*schema.KindSeries{}}

	assert.Equal(t, Fingerprint(a), Fingerprint(b))
}
