// Package query implements the windowed range query over the log store:
// it reads the raw records of a time window and partitions them into
// per-kind, per-field series keyed by the numeric field names discovered
// in that window.
package query

import (
	"context"
	"time"

	"github.com/loggraph/loggraph/internal/contract"
	"github.com/loggraph/loggraph/schema"
)

// row is one record reduced to its window offset and numeric fields.
type row struct {
	offset  float64
	numeric map[string]float64
}

// Window reads all records in [start, end] and builds the per-kind raw
// series. Times are offsets in seconds from start. The numeric key set is
// discovered from the records themselves; a field missing from a record
// yields a nil slot so downstream binning can skip it.
//
// A store failure returns (nil, err); callers render the no-data state
// rather than retrying immediately.
func Window(ctx context.Context, reader contract.RecordReader, start, end time.Time) (*schema.QueryResult, error) {
	records, err := reader.QueryRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	// First pass: group rows and discover the numeric key set per kind.
	rowsByKind := make(map[schema.SourceKind][]row)
	keysByKind := make(map[schema.SourceKind]map[string]struct{})
	for _, rec := range records {
		fields, err := schema.DecodePayload(rec.Payload)
		if err != nil {
			// Rows written outside the collector may carry broken
			// payloads; they don't invalidate the window.
			continue
		}
		numeric := schema.NumericFields(fields)
		rowsByKind[rec.Kind] = append(rowsByKind[rec.Kind], row{
			offset:  rec.Timestamp.Sub(start).Seconds(),
			numeric: numeric,
		})
		keys, ok := keysByKind[rec.Kind]
		if !ok {
			keys = make(map[string]struct{})
			keysByKind[rec.Kind] = keys
		}
		for key := range numeric {
			keys[key] = struct{}{}
		}
	}

	// Second pass: build column-oriented series per kind.
	result := &schema.QueryResult{Kinds: make(map[schema.SourceKind]*schema.KindSeries, len(rowsByKind))}
	for kind, rows := range rowsByKind {
		series := schema.NewKindSeries()
		series.Times = make([]float64, len(rows))
		for i, r := range rows {
			series.Times[i] = r.offset
		}
		for key := range keysByKind[kind] {
			values := make([]*float64, len(rows))
			for i, r := range rows {
				if v, ok := r.numeric[key]; ok {
					value := v
					values[i] = &value
				}
			}
			series.Fields[key] = values
		}
		result.Kinds[kind] = series
	}
	return result, nil
}
