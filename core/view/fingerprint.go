package view

import (
	"encoding/hex"
	"sort"
	"strconv"

	"github.com/loggraph/loggraph/schema"
	"github.com/zeebo/blake3"
)

// Fingerprint digests a successful query result into a stable hex token.
// The serialization is canonical: kinds and field names are visited in
// sorted order and absent values get an explicit marker, so two results
// with identical content always collide and nothing else does. Callers
// must not fingerprint failed queries; failure renders as no-data and
// keeps the previous fingerprint (a transient failure must never match an
// unrelated empty-result state).
func Fingerprint(result *schema.QueryResult) string {
	hasher := blake3.New()

	kinds := make([]string, 0, len(result.Kinds))
	for kind := range result.Kinds {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)

	buf := make([]byte, 0, 64)
	for _, kind := range kinds {
		series := result.Kinds[schema.SourceKind(kind)]
		_, _ = hasher.Write([]byte("kind:" + kind + "\n"))

		for _, t := range series.Times {
			buf = strconv.AppendFloat(buf[:0], t, 'g', -1, 64)
			buf = append(buf, ',')
			_, _ = hasher.Write(buf)
		}
		_, _ = hasher.Write([]byte("\n"))

		fields := make([]string, 0, len(series.Fields))
		for field := range series.Fields {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		for _, field := range fields {
			_, _ = hasher.Write([]byte("field:" + field + "\n"))
			for _, value := range series.Fields[field] {
				if value == nil {
					_, _ = hasher.Write([]byte("_,"))
					continue
				}
				buf = strconv.AppendFloat(buf[:0], *value, 'g', -1, 64)
				buf = append(buf, ',')
				_, _ = hasher.Write(buf)
			}
			_, _ = hasher.Write([]byte("\n"))
		}
	}

	sum := hasher.Sum(nil)
	return hex.EncodeToString(sum)
}
