package sink

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/goodnatureofminers/coinbase-pool-attributor/internal/coinbase/model"
)

// CSV writes a comma-separated export with a header row.
type CSV struct {
	path string
}

// NewCSV returns a CSV sink writing to path.
func NewCSV(path string) *CSV {
	return &CSV{path: path}
}

func (s *CSV) Name() string { return "csv" }

func (s *CSV) Path() string { return s.path }

// Write replaces the file at path with table.
func (s *CSV) Write(ctx context.Context, table model.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return writeAtomic(s.path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		header := make([]string, len(table.Header))
		for i, c := range table.Header {
			header[i] = string(c)
		}
		if err := cw.Write(header); err != nil {
			return err
		}
		if err := cw.WriteAll(table.Rows); err != nil {
			return err
		}
		return cw.Error()
	})
}
