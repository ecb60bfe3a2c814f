// Package service wires the coinbase attribution pipeline together.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/coinbase-pool-attributor/internal/coinbase/decoder"
	"github.com/goodnatureofminers/coinbase-pool-attributor/internal/coinbase/matcher"
	"github.com/goodnatureofminers/coinbase-pool-attributor/internal/coinbase/model"
	"github.com/goodnatureofminers/coinbase-pool-attributor/pkg/workerpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Config tunes an AttributionService.
type Config struct {
	// WorkerCount below one runs a single worker.
	WorkerCount    int
	DecodedColumns bool
}

// AttributionService loads pool tags and records, attributes every record and exports the result.
type AttributionService struct {
	logger         *zap.Logger
	tags           PoolTagLoader
	source         RecordSource
	sinks          []Sink
	progress       Progress
	metrics        AttributionMetrics
	workerCount    int
	decodedColumns bool
}

// NewAttributionService validates dependencies and builds the service. progress may be nil.
func NewAttributionService(
	tags PoolTagLoader,
	source RecordSource,
	sinks []Sink,
	progress Progress,
	metrics AttributionMetrics,
	cfg Config,
	logger *zap.Logger,
) (*AttributionService, error) {
	if tags == nil {
		return nil, errors.New("pool tag loader is required")
	}
	if source == nil {
		return nil, errors.New("record source is required")
	}
	if len(sinks) == 0 {
		return nil, errors.New("at least one sink is required")
	}
	if metrics == nil {
		return nil, errors.New("attribution metrics is required")
	}
	if progress == nil {
		progress = noopProgress{}
	}
	workers := cfg.WorkerCount
	if workers < 1 {
		workers = 1
	}

	return &AttributionService{
		logger:         logger.Named("attribution"),
		tags:           tags,
		source:         source,
		sinks:          sinks,
		progress:       progress,
		metrics:        metrics,
		workerCount:    workers,
		decodedColumns: cfg.DecodedColumns,
	}, nil
}

// Run executes one batch. Configuration and export failures abort it; decode failures never do.
func (s *AttributionService) Run(ctx context.Context) (summary Summary, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveRun(err, summary.Records, started)
	}()

	tags, err := s.tags.Load(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("load pool tags: %w", err)
	}
	s.logger.Info("pool tags loaded", zap.Int("tag_count", len(tags)))

	set, err := s.source.Read(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("read records: %w", err)
	}
	if !set.Has(model.ColumnInputScript) {
		s.logger.Warn("input script column missing, every record will be unattributed",
			zap.String("column", string(model.ColumnInputScript)))
	}

	s.progress.Start(ctx)
	records, err := s.process(ctx, set.Records, matcher.New(tags))
	s.progress.Stop()
	if err != nil {
		return Summary{}, fmt.Errorf("process records: %w", err)
	}

	table, missing := project(set, records, s.columns())
	if len(missing) > 0 {
		s.logger.Warn("columns missing from the input are excluded from the export",
			zap.Strings("columns", columnNames(missing)))
	}

	summary = summarize(tags, records)
	summary.MissingColumns = missing
	s.logSummary(summary)

	if err := s.export(ctx, table); err != nil {
		return summary, err
	}
	return summary, nil
}

func (s *AttributionService) process(
	ctx context.Context,
	records []model.TransactionRecord,
	m *matcher.Matcher,
) ([]model.TransactionRecord, error) {
	indexes := make([]int, len(records))
	for i := range indexes {
		indexes[i] = i
	}
	return workerpool.Map(ctx, s.workerCount, indexes, func(_ context.Context, i int) (model.TransactionRecord, error) {
		rec := records[i]
		rec.Decoded = decoder.Decode(rec.InputScript)
		if rec.Decoded.Failed() {
			s.logger.Debug("input script not decoded",
				zap.Int("row", i),
				zap.String("tx_hash", rec.TxHash),
				zap.Error(rec.Decoded.Err),
			)
		}
		rec.Attribution = m.Attribute(rec.Decoded)
		s.metrics.ObserveRecord(rec)
		return rec, nil
	})
}

func (s *AttributionService) columns() []model.Column {
	columns := append([]model.Column(nil), model.OutputColumns...)
	if s.decodedColumns {
		columns = append(columns, model.DecodedColumns...)
	}
	return columns
}

// export writes every sink from the same table. Sinks are independent: one failing does not stop the others.
func (s *AttributionService) export(ctx context.Context, table model.Table) error {
	errs := make([]error, len(s.sinks))
	var g errgroup.Group
	for i, sink := range s.sinks {
		g.Go(func() error {
			started := time.Now()
			err := sink.Write(ctx, table)
			s.metrics.ObserveExport(sink.Name(), err, started)
			if err != nil {
				s.logger.Error("export failed", zap.String("sink", sink.Name()), zap.String("path", sink.Path()), zap.Error(err))
				errs[i] = fmt.Errorf("export %s: %w", sink.Name(), err)
				return nil
			}
			s.logger.Info("processed data saved",
				zap.String("sink", sink.Name()),
				zap.String("path", sink.Path()),
				zap.Int("rows", len(table.Rows)),
			)
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}

func (s *AttributionService) logSummary(summary Summary) {
	s.logger.Info("attribution finished",
		zap.Int("records", summary.Records),
		zap.Int("attributed", summary.Attributed),
		zap.Int("unattributed", summary.Unattributed),
		zap.Int("decode_failures", summary.DecodeFailures),
	)
	for _, pool := range summary.Pools {
		s.logger.Info("pool records", zap.String("pool", pool.Name), zap.Int("records", pool.Records))
	}
}

type noopProgress struct{}

func (noopProgress) Start(context.Context) {}
func (noopProgress) Stop()                 {}
