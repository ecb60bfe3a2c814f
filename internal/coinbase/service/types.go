package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/coinbase-pool-attributor/internal/coinbase/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	PoolTagLoader interface {
		Load(ctx context.Context) ([]model.PoolTag, error)
	}
	RecordSource interface {
		Read(ctx context.Context) (model.RecordSet, error)
	}
	Sink interface {
		Name() string
		Path() string
		Write(ctx context.Context, table model.Table) error
	}
	Progress interface {
		Start(ctx context.Context)
		Stop()
	}
	AttributionMetrics interface {
		ObserveRecord(rec model.TransactionRecord)
		ObserveExport(sink string, err error, started time.Time)
		ObserveRun(err error, records int, started time.Time)
	}
)

// PoolCount is the number of records attributed to one pool.
type PoolCount struct {
	Name    string
	Records int
}

// Summary describes the outcome of a run.
type Summary struct {
	Records        int
	Attributed     int
	Unattributed   int
	DecodeFailures int
	MissingColumns []model.Column

	// Pools lists pools with at least one record, in configuration order.
	Pools []PoolCount
}
