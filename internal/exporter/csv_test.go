package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestCSVWriter_WriteCSV(t *testing.T) {
	w := NewCSVWriter(nil)
	path := filepath.Join(t.TempDir(), "reports", "summary.csv")

	err := w.WriteCSV(path, WriteOptions{
		Headers: []string{"department", "unique_orders"},
		Records: [][]string{
			{"produce", "412"},
			{"dairy eggs", "391"},
		},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "department,unique_orders\nproduce,412\ndairy eggs,391\n", string(data))
}

func TestCSVWriter_Overwrites(t *testing.T) {
	w := NewCSVWriter(nil)
	path := filepath.Join(t.TempDir(), "summary.csv")

	require.NoError(t, w.WriteCSV(path, WriteOptions{Headers: []string{"a"}, Records: [][]string{{"1"}}}))
	require.NoError(t, w.WriteCSV(path, WriteOptions{Headers: []string{"a"}, Records: [][]string{{"2"}}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\n2\n", string(data))
}

func TestCSVWriter_Append(t *testing.T) {
	w := NewCSVWriter(nil)
	path := filepath.Join(t.TempDir(), "summary.csv")

	require.NoError(t, w.WriteCSV(path, WriteOptions{Headers: []string{"a"}, Records: [][]string{{"1"}}}))
	require.NoError(t, w.WriteCSV(path, WriteOptions{Append: true, Records: [][]string{{"2"}}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\n1\n2\n", string(data))
}

func TestCSVWriter_BOM(t *testing.T) {
	w := NewCSVWriter(nil)
	path := filepath.Join(t.TempDir(), "summary.csv")

	require.NoError(t, w.WriteCSV(path, WriteOptions{
		Headers:   []string{"a"},
		Records:   [][]string{{"1"}},
		BOMPrefix: true,
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "13.40", FormatFloat(13.4))
	assert.Equal(t, "0.650", FormatFloat3(0.65))
	assert.Equal(t, "42", FormatInt(42))
}

func TestXLSXWriter_WriteWorkbook(t *testing.T) {
	w := NewXLSXWriter(nil)
	path := filepath.Join(t.TempDir(), "reports", "executive_summary.xlsx")

	err := w.WriteWorkbook(path, []Sheet{
		{
			Name:    "Summary",
			Headers: []string{"metric", "value"},
			Records: [][]string{{"total_orders", "2000"}},
		},
		{
			Name:    "Departments",
			Headers: []string{"department", "orders"},
			Records: [][]string{{"produce", "412"}},
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Departments"}, f.GetSheetList())

	val, err := f.GetCellValue("Summary", "A2")
	require.NoError(t, err)
	assert.Equal(t, "total_orders", val)

	val, err = f.GetCellValue("Departments", "B2")
	require.NoError(t, err)
	assert.Equal(t, "412", val)
}

func TestXLSXWriter_RejectsEmpty(t *testing.T) {
	w := NewXLSXWriter(nil)
	assert.Error(t, w.WriteWorkbook(filepath.Join(t.TempDir(), "x.xlsx"), nil))
}
