package refdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sentinel errors returned by Load.
var (
	ErrUnsupportedFormat = errors.New("unsupported reference format (use .xlsx, .xlsm or .csv)")
	ErrEmptyReference    = errors.New("reference file has no data rows (need a header row plus at least one row)")
	ErrSheetNotFound     = errors.New("worksheet not found in reference file")
)

// Load parses a reference spreadsheet into a Table. The format is picked by
// file extension. sheet selects a worksheet for Excel files; empty means the
// first sheet. CSV files ignore sheet.
func Load(path, sheet string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return loadExcel(path, sheet)
	case ".csv":
		return loadCSV(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func loadExcel(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open reference file: %w", err)
	}
	defer f.Close()

	name := sheet
	if name == "" {
		name = f.GetSheetName(0)
	}
	if name == "" {
		return nil, ErrSheetNotFound
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	return tableFromRecords(rows)
}

func loadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reference file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are padded below
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return tableFromRecords(records)
}

// tableFromRecords converts a header row plus data rows into a Table.
// Short rows are padded with empty cells; columns with blank headers are
// dropped.
func tableFromRecords(records [][]string) (*Table, error) {
	if len(records) < 2 {
		return nil, ErrEmptyReference
	}

	var columns []string
	var colIdx []int
	for i, h := range records[0] {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		columns = append(columns, h)
		colIdx = append(colIdx, i)
	}
	if len(columns) == 0 {
		return nil, ErrEmptyReference
	}

	t := &Table{Columns: columns}
	for _, rec := range records[1:] {
		row := make(Row, len(columns))
		empty := true
		for j, col := range columns {
			v := ""
			if colIdx[j] < len(rec) {
				v = rec[colIdx[j]]
			}
			if strings.TrimSpace(v) != "" {
				empty = false
			}
			row[col] = v
		}
		if empty {
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	if len(t.Rows) == 0 {
		return nil, ErrEmptyReference
	}
	return t, nil
}
