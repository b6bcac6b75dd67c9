package internal

import (
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/loggraph/loggraph/internal/contract"
	"github.com/loggraph/loggraph/schema"
)

// PrintStoreStats prints per-kind record counts and timestamp bounds as
// a table on stdout.
func PrintStoreStats(stats []contract.KindStats) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Type", "Records", "First", "Last"})

	var data [][]string
	for _, entry := range stats {
		first, last := "-", "-"
		if !entry.First.IsZero() {
			first = schema.FormatTimestamp(entry.First)
		}
		if !entry.Last.IsZero() {
			last = schema.FormatTimestamp(entry.Last)
		}
		data = append(data, []string{
			string(entry.Kind),
			strconv.FormatInt(entry.Count, 10),
			first,
			last,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
