// Package exporter writes canonical billing rows to CSV. The column set
// and order come from the domain contract and must stay stable; consumers
// key on them.
package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gdreport/pkg/contracts/domain"
)

// CSVWriter exports canonical rows.
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a CSV writer.
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteReport writes the consolidated canonical report to filePath,
// creating parent directories as needed. A UTF-8 BOM is prefixed so Excel
// opens the accented column labels correctly.
func (w *CSVWriter) WriteReport(filePath string, rows []*domain.BillingRow) error {
	sw, err := w.NewStream(filePath)
	if err != nil {
		return err
	}

	for i, row := range rows {
		if err := sw.Write(row); err != nil {
			sw.Close()
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	if err := sw.Close(); err != nil {
		return err
	}

	w.logger.Info("canonical report written",
		slog.String("path", filePath),
		slog.Int("row_count", len(rows)))
	return nil
}

// Stream writes canonical rows one at a time, for merges too large to hold
// as a single slice.
type Stream struct {
	file   *os.File
	writer *csv.Writer
}

// NewStream opens a streaming report writer and emits the header.
func (w *CSVWriter) NewStream(filePath string) (*Stream, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	// BOM keeps Excel from mangling UTF-8 headers.
	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(domain.BillingColumns()); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	return &Stream{file: file, writer: writer}, nil
}

// Write appends one canonical row.
func (s *Stream) Write(row *domain.BillingRow) error {
	return s.writer.Write(row.Record())
}

// Close flushes and closes the underlying file.
func (s *Stream) Close() error {
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}
