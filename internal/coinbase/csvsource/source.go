// Package csvsource reads coinbase transaction exports from CSV files.
package csvsource

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/goodnatureofminers/coinbase-pool-attributor/internal/coinbase/model"
	"go.uber.org/zap"
)

// ErrNoInput is returned when the input path holds no CSV files.
var ErrNoInput = errors.New("no csv input files")

const utf8BOM = "\ufeff"

// Source concatenates one CSV file or every CSV file of a directory, in file name order.
type Source struct {
	path   string
	logger *zap.Logger
}

// New returns a Source reading path, which may be a directory or a single file.
func New(path string, logger *zap.Logger) *Source {
	return &Source{path: path, logger: logger.Named("csvSource")}
}

// Read loads every row of every input file into memory.
func (s *Source) Read(ctx context.Context) (model.RecordSet, error) {
	files, err := s.files()
	if err != nil {
		return model.RecordSet{}, err
	}

	set := model.RecordSet{Columns: make(map[model.Column]bool)}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return model.RecordSet{}, err
		}
		n, err := readFile(file, &set)
		if err != nil {
			return model.RecordSet{}, fmt.Errorf("read %s: %w", file, err)
		}
		s.logger.Info("file read", zap.String("path", file), zap.Int("rows", n))
	}

	s.logger.Info("merged input files",
		zap.Int("file_count", len(files)),
		zap.Int("record_count", len(set.Records)),
	)
	return set, nil
}

func (s *Source) files() ([]string, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}
	if !info.IsDir() {
		return []string{s.path}, nil
	}

	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, fmt.Errorf("list input dir: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".csv") {
			continue
		}
		files = append(files, entry.Name())
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoInput, s.path)
	}

	sort.Strings(files)
	for i, name := range files {
		files[i] = filepath.Join(s.path, name)
	}
	return files, nil
}

// exportRow maps the columns the pipeline consumes. Other columns are only tracked by name.
type exportRow struct {
	InputScript string `csv:"Input script"`
	TxHash      string `csv:"TX hash"`
	Timestamp   string `csv:"Timestamp"`
	Date        string `csv:"Date"`
}

func readFile(path string, set *model.RecordSet) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	data = bytes.TrimPrefix(data, []byte(utf8BOM))
	if len(data) == 0 {
		return 0, nil
	}

	header, err := csv.NewReader(bytes.NewReader(data)).Read()
	if err != nil {
		return 0, fmt.Errorf("header: %w", err)
	}
	for _, name := range header {
		set.Columns[model.Column(name)] = true
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	var rows []exportRow
	if err := gocsv.UnmarshalCSV(r, &rows); err != nil {
		return 0, err
	}
	for _, row := range rows {
		set.Records = append(set.Records, model.TransactionRecord{
			InputScript: row.InputScript,
			TxHash:      row.TxHash,
			Timestamp:   row.Timestamp,
			Date:        row.Date,
		})
	}
	return len(rows), nil
}
