package xlsexport

import "github.com/xuri/excelize/v2"

const (
	fontFamily = "Times New Roman"
	fontSize   = 11
	colWidth   = 25
)

// sheetWriter построчная запись таблицы на лист
type sheetWriter struct {
	f         *excelize.File
	sheet     string
	row       int
	dataStyle int
}

func newSheetWriter(f *excelize.File, sheet string) (*sheetWriter, error) {
	dataStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Font:      &excelize.Font{Family: fontFamily, Size: fontSize},
	})
	if err != nil {
		return nil, err
	}
	return &sheetWriter{f: f, sheet: sheet, dataStyle: dataStyle}, nil
}

func (w *sheetWriter) header(headers []string) error {
	style, err := w.f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Family: fontFamily, Size: fontSize},
	})
	if err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err = w.f.SetColWidth(w.sheet, "A", lastCol, colWidth); err != nil {
		return err
	}
	values := make([]interface{}, 0, len(headers))
	for _, h := range headers {
		values = append(values, h)
	}
	return w.write(values, style)
}

func (w *sheetWriter) line(values []interface{}) error {
	return w.write(values, w.dataStyle)
}

func (w *sheetWriter) write(values []interface{}, style int) error {
	w.row++
	first, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(values), w.row)
	if err != nil {
		return err
	}
	if err = w.f.SetSheetRow(w.sheet, first, &values); err != nil {
		return err
	}
	return w.f.SetCellStyle(w.sheet, first, last, style)
}
