package service

import (
	"github.com/goodnatureofminers/coinbase-pool-attributor/internal/coinbase/model"
	"github.com/goodnatureofminers/coinbase-pool-attributor/pkg/printable"
)

// derivedColumns are produced by the pipeline and never missing.
var derivedColumns = map[model.Column]bool{
	model.ColumnPoolName: true,
	model.ColumnPoolLink: true,
	model.ColumnUTF8:     true,
	model.ColumnASCII:    true,
	model.ColumnHex:      true,
	model.ColumnHeight:   true,
	model.ColumnASM:      true,
}

// project selects columns from the attributed records and sanitizes every cell.
// Input columns absent from every source are dropped and returned as missing.
func project(set model.RecordSet, records []model.TransactionRecord, columns []model.Column) (model.Table, []model.Column) {
	var (
		header  []model.Column
		missing []model.Column
	)
	for _, c := range columns {
		if derivedColumns[c] || set.Has(c) {
			header = append(header, c)
			continue
		}
		missing = append(missing, c)
	}

	rows := make([][]string, len(records))
	for i, rec := range records {
		row := make([]string, len(header))
		for j, c := range header {
			v, _ := rec.Value(c)
			row[j] = printable.Sanitize(v)
		}
		rows[i] = row
	}
	return model.Table{Header: header, Rows: rows}, missing
}

func summarize(tags []model.PoolTag, records []model.TransactionRecord) Summary {
	counts := make(map[string]int)
	summary := Summary{Records: len(records)}
	for _, rec := range records {
		if rec.Decoded.Failed() {
			summary.DecodeFailures++
		}
		if !rec.Attribution.Matched() {
			summary.Unattributed++
			continue
		}
		summary.Attributed++
		counts[rec.Attribution.PoolName]++
	}

	seen := make(map[string]bool, len(counts))
	for _, tag := range tags {
		n := counts[tag.Name]
		if n == 0 || seen[tag.Name] {
			continue
		}
		seen[tag.Name] = true
		summary.Pools = append(summary.Pools, PoolCount{Name: tag.Name, Records: n})
	}
	return summary
}

func columnNames(columns []model.Column) []string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = string(c)
	}
	return names
}
