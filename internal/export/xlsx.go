package export

import (
	"github.com/xuri/excelize/v2"

	"github.com/rayannott/flipmap/internal/gridmap"
	"github.com/rayannott/flipmap/internal/pendulum"
)

// WriteXLSX saves a map as a workbook: a Summary sheet with the run
// parameters and a Map sheet holding the raw counts.
func WriteXLSX(path string, m *gridmap.Map, cnst pendulum.Constants) error {
	f := excelize.NewFile()

	summary := "Summary"
	f.SetSheetName("Sheet1", summary)

	f.SetCellValue(summary, "A1", "Parameter")
	f.SetCellValue(summary, "B1", "Value")

	params := []struct {
		name  string
		value interface{}
	}{
		{"N", m.N},
		{"rows", m.Rows},
		{"cols", m.Cols},
		{"max_flips", m.Max()},
		{"g", cnst.G},
		{"l1", cnst.L1},
		{"l2", cnst.L2},
		{"m1", cnst.M1},
		{"m2", cnst.M2},
		{"t_final", cnst.TFinal},
	}
	for i, p := range params {
		row := i + 2
		cell, _ := excelize.CoordinatesToCellName(1, row)
		f.SetCellValue(summary, cell, p.name)
		cell, _ = excelize.CoordinatesToCellName(2, row)
		f.SetCellValue(summary, cell, p.value)
	}

	sheet := "Map"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	for i := 0; i < m.Rows; i++ {
		for j, v := range m.Row(i) {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f.SaveAs(path)
}
