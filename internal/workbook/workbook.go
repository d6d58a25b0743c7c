// Package workbook adapts excelize to the narrow reader surface the
// pipeline needs: an ordered list of sheets, each exposing its raw cell
// grid. Decoding is the only I/O the processing path performs; everything
// downstream operates on materialized in-memory rows.
package workbook

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet is one worksheet of a source workbook.
type Sheet struct {
	Name string
	Rows [][]string
}

// Reader yields the sheets of a decoded workbook in document order.
type Reader interface {
	Sheets() []Sheet
}

// memoryReader holds a fully decoded workbook.
type memoryReader struct {
	sheets []Sheet
}

func (r *memoryReader) Sheets() []Sheet { return r.sheets }

// OpenBuffer decodes an in-memory spreadsheet. Cells are read raw, so date
// cells surface as their underlying serial numbers for the date parser.
func OpenBuffer(buf []byte) (Reader, error) {
	f, err := excelize.OpenReader(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("failed to decode workbook: %w", err)
	}
	defer f.Close()

	return readAll(f)
}

// OpenFile decodes a spreadsheet from disk.
func OpenFile(path string) (Reader, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return readAll(f)
}

func readAll(f *excelize.File) (Reader, error) {
	var sheets []Sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
		}
		sheets = append(sheets, Sheet{Name: name, Rows: rows})
	}
	return &memoryReader{sheets: sheets}, nil
}
