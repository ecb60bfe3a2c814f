// Package pooltags loads the mining pool tag dictionary.
package pooltags

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goodnatureofminers/coinbase-pool-attributor/internal/coinbase/model"
	jsoniter "github.com/json-iterator/go"
)

const sectionKey = "coinbase_tags"

var (
	ErrMissingSection = errors.New("coinbase_tags section missing")
	ErrNoTags         = errors.New("no pool tags configured")
	ErrEmptyName      = errors.New("pool tag has empty name")
	ErrTrailingData   = errors.New("unexpected data after the top-level object")
)

type tagRecord struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// FileLoader reads pool tags from a JSON document on disk.
type FileLoader struct {
	path string
}

// NewFileLoader returns a loader for the JSON file at path.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Load reads and parses the configured file.
func (l *FileLoader) Load(ctx context.Context) ([]model.PoolTag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", l.path, err)
	}
	tags, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", l.path, err)
	}
	return tags, nil
}

// Parse decodes the coinbase_tags object of data, keeping the document order of its keys.
// A repeated coinbase_tags key replaces the earlier one.
func Parse(data []byte) ([]model.PoolTag, error) {
	iter := jsoniter.ParseBytes(jsoniter.ConfigDefault, data)

	var (
		tags    []model.PoolTag
		found   bool
		nameErr error
	)
	iter.ReadObjectCB(func(iter *jsoniter.Iterator, field string) bool {
		if field != sectionKey {
			iter.Skip()
			return true
		}
		found = true
		tags = nil
		if iter.WhatIsNext() != jsoniter.ObjectValue {
			iter.ReportError("read coinbase_tags", "expect object")
			return false
		}
		return iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
			if iter.WhatIsNext() != jsoniter.ObjectValue {
				iter.ReportError("read pool tag "+key, "expect object")
				return false
			}
			var rec tagRecord
			iter.ReadVal(&rec)
			if iter.Error != nil {
				return false
			}
			if rec.Name == "" {
				nameErr = fmt.Errorf("%w: key %q", ErrEmptyName, key)
				return false
			}
			tags = append(tags, model.PoolTag{Key: key, Name: rec.Name, Link: rec.Link})
			return true
		})
	})

	if nameErr != nil {
		return nil, nameErr
	}
	if iter.Error != nil {
		return nil, iter.Error
	}
	// Only the end of input sets io.EOF here.
	if iter.WhatIsNext(); !errors.Is(iter.Error, io.EOF) {
		return nil, ErrTrailingData
	}
	if !found {
		return nil, ErrMissingSection
	}
	if len(tags) == 0 {
		return nil, ErrNoTags
	}
	return tags, nil
}
