package schema

// KindSeries holds the raw samples of one source kind inside a query window.
// Times are offsets in seconds from the window start. Fields maps each
// numeric field name discovered in the window to a value slice parallel to
// Times; a nil entry means the field was absent from that record and must be
// skipped by downstream binning.
type KindSeries struct {
	Times  []float64
	Fields map[string][]*float64
}

// NewKindSeries returns an empty series ready to append samples into.
func NewKindSeries() *KindSeries {
	return &KindSeries{Fields: make(map[string][]*float64)}
}

// QueryResult groups raw series by source kind for one query window.
type QueryResult struct {
	Kinds map[SourceKind]*KindSeries
}

// Empty reports whether the window contained no records at all.
func (r *QueryResult) Empty() bool {
	if r == nil {
		return true
	}
	for _, series := range r.Kinds {
		if len(series.Times) > 0 {
			return false
		}
	}
	return true
}

// Latest returns the most recent non-absent value of a field, scanning
// backwards from the end of the window. ok is false when the field never
// carried a value in the window.
func (r *QueryResult) Latest(kind SourceKind, field string) (float64, bool) {
	if r == nil {
		return 0, false
	}
	series, found := r.Kinds[kind]
	if !found {
		return 0, false
	}
	values := series.Fields[field]
	for i := len(values) - 1; i >= 0; i-- {
		if values[i] != nil {
			return *values[i], true
		}
	}
	return 0, false
}

// AggPoint is one downsampled display point: the start offset of its bucket
// within the window and the reduced value of the samples that fell in it.
type AggPoint struct {
	BucketStart float64
	Value       float64
}
