// Package store persists passages and findings as newline-delimited JSON.
// Both stores are append-only flat files: one record per line, no
// deduplication, regenerated wholesale on each pipeline run.
package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Writer appends records to a JSONL file, one JSON object per line.
type Writer[T any] struct {
	f   *os.File
	enc *json.Encoder
	n   int
}

// NewWriter creates (truncating) the JSONL file at path, creating parent
// directories as needed.
func NewWriter[T any](path string) (*Writer[T], error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return &Writer[T]{f: f, enc: json.NewEncoder(f)}, nil
}

// OpenAppend opens the JSONL file at path for appending, creating it and any
// parent directories if missing. Used by watch mode to extend the stores.
func OpenAppend[T any](path string) (*Writer[T], error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Writer[T]{f: f, enc: json.NewEncoder(f)}, nil
}

// Write appends one record as a single JSON line.
func (w *Writer[T]) Write(rec *T) error {
	if err := w.enc.Encode(rec); err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	w.n++
	return nil
}

// Count returns the number of records written.
func (w *Writer[T]) Count() int { return w.n }

// Close flushes and closes the underlying file.
func (w *Writer[T]) Close() error {
	return w.f.Close()
}

// ReadAll reads every record from the JSONL file at path. A missing file is
// an error; a malformed line is an error naming the line number.
func ReadAll[T any](path string) ([]*T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var out []*T
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		rec := new(T)
		if err := json.Unmarshal(raw, rec); err != nil {
			return nil, fmt.Errorf("parse %s line %d: %w", path, line, err)
		}
		out = append(out, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	return out, nil
}
