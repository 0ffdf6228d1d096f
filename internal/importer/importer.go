// Package importer reads word pairs from CSV and Excel files.
// Column A holds the target text and column B the translation.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"wordquiz/internal/domain"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for files that are neither CSV nor XLSX
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Options defines how a file is read
type Options struct {
	// Sheet is the Excel sheet to read. The first sheet is used when empty.
	Sheet string
	// SkipHeader drops the first row
	SkipHeader bool
}

// ReadPairs reads raw word pairs from path. Blank rows are dropped.
// Pairs are returned as found; validation is left to the caller.
func ReadPairs(path string, opts Options) ([]domain.WordPair, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path, opts)
	case ".xlsx", ".xlsm":
		return readExcel(path, opts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func readExcel(path string, opts Options) ([]domain.WordPair, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("no sheets in %s", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	return toPairs(rows, opts.SkipHeader), nil
}

func readCSV(path string, opts Options) ([]domain.WordPair, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		rows = append(rows, row)
	}

	return toPairs(rows, opts.SkipHeader), nil
}

func toPairs(rows [][]string, skipHeader bool) []domain.WordPair {
	if skipHeader && len(rows) > 0 {
		rows = rows[1:]
	}

	pairs := make([]domain.WordPair, 0, len(rows))
	for _, row := range rows {
		var target, translation string
		if len(row) > 0 {
			target = strings.TrimSpace(row[0])
		}
		if len(row) > 1 {
			translation = strings.TrimSpace(row[1])
		}
		if target == "" && translation == "" {
			continue
		}
		pairs = append(pairs, domain.WordPair{Target: target, Translation: translation})
	}
	return pairs
}
