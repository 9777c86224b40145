package exporter

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	apperrors "insightcli/internal/errors"
)

// XLSXWriter exports summary tables as Excel workbooks so the executive
// summary opens directly in a spreadsheet.
type XLSXWriter struct {
	logger *slog.Logger
}

// NewXLSXWriter creates a new workbook writer.
func NewXLSXWriter(logger *slog.Logger) *XLSXWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &XLSXWriter{logger: logger}
}

// Sheet is one worksheet: a header row followed by data rows.
type Sheet struct {
	Name    string
	Headers []string
	Records [][]string
}

// WriteWorkbook writes the sheets to an xlsx file, creating parent
// directories. The first sheet replaces the workbook's default sheet.
func (w *XLSXWriter) WriteWorkbook(path string, sheets []Sheet) error {
	if len(sheets) == 0 {
		return apperrors.NewValidationError("workbook needs at least one sheet", nil)
	}

	w.logger.Info("writing XLSX workbook",
		slog.String("path", path),
		slog.Int("sheet_count", len(sheets)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create output directory", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return apperrors.NewStorageError("failed to rename default sheet", err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return apperrors.NewStorageError("failed to create sheet", err).
					WithContext("sheet", sheet.Name)
			}
		}

		if err := writeSheet(f, sheet); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return apperrors.NewStorageError("failed to save workbook", err).
			WithContext("path", path)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet Sheet) error {
	rows := make([][]string, 0, len(sheet.Records)+1)
	if len(sheet.Headers) > 0 {
		rows = append(rows, sheet.Headers)
	}
	rows = append(rows, sheet.Records...)

	for r, row := range rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return apperrors.NewStorageError("failed to compute cell name", err)
			}
			if err := f.SetCellValue(sheet.Name, cell, val); err != nil {
				return apperrors.NewStorageError("failed to set cell value", err).
					WithContext("sheet", sheet.Name).
					WithContext("cell", cell)
			}
		}
	}
	return nil
}
