package sink

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/goodnatureofminers/coinbase-pool-attributor/internal/coinbase/model"
	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// numericColumns are written as numbers when their value parses as an integer.
var numericColumns = map[model.Column]bool{
	model.ColumnTimestamp: true,
	model.ColumnHeight:    true,
}

// XLSX writes a single-sheet spreadsheet export.
type XLSX struct {
	path  string
	sheet string
}

// NewXLSX returns an XLSX sink writing sheet to path.
func NewXLSX(path, sheet string) *XLSX {
	if sheet == "" {
		sheet = defaultSheet
	}
	return &XLSX{path: path, sheet: sheet}
}

func (s *XLSX) Name() string { return "xlsx" }

func (s *XLSX) Path() string { return s.path }

// Write replaces the file at path with table.
func (s *XLSX) Write(ctx context.Context, table model.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if s.sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, s.sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	sw, err := f.NewStreamWriter(s.sheet)
	if err != nil {
		return fmt.Errorf("stream writer: %w", err)
	}

	header := make([]interface{}, len(table.Header))
	for i, c := range table.Header {
		header[i] = excelize.Cell{StyleID: headerStyle, Value: string(c)}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	values := make([]interface{}, len(table.Header))
	for i, row := range table.Rows {
		if i%10_000 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		for j := range values {
			values[j] = nil
			if j < len(row) {
				values[j] = cellValue(table.Header[j], row[j])
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush sheet: %w", err)
	}

	return writeAtomic(s.path, func(w io.Writer) error {
		return f.Write(w)
	})
}

func cellValue(c model.Column, v string) interface{} {
	if numericColumns[c] {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return v
}
