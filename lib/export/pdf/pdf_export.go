package pdfexport

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	dbmodels "komreq-backend/models/db"
)

const (
	fontFamily   = "Arial"
	fontFile     = "Arial.ttf"
	fontBoldFile = "Arial Bold.ttf"
	reportTitle  = "Equipment requests"
	dateLayout   = "2006-01-02 15:04"
)

// RequestListPdf отчет по заявкам, при наличии шрифта Arial в fontDir текст выводится в UTF-8
func RequestListPdf(list []dbmodels.Request, fontDir string) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("RequestListPdf panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", fontDir)
	family, tr := setFont(pdf, fontDir)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(family, "", 9)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.SetFont(family, "B", 16)
	pdf.CellFormat(0, 10, tr(reportTitle), "", 1, "C", false, 0, "")
	pdf.SetFont(family, "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Total: %d", len(list))), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, item := range list {
		writeRequestBlock(pdf, family, tr, item)
	}

	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setFont(pdf *fpdf.Fpdf, fontDir string) (string, func(string) string) {
	if fontDir != "" && fileExists(filepath.Join(fontDir, fontFile)) {
		pdf.AddUTF8Font(fontFamily, "", fontFile)
		if fileExists(filepath.Join(fontDir, fontBoldFile)) {
			pdf.AddUTF8Font(fontFamily, "B", fontBoldFile)
		} else {
			pdf.AddUTF8Font(fontFamily, "B", fontFile)
		}
		pdf.SetFont(fontFamily, "", 10)
		return fontFamily, func(s string) string { return s }
	}
	pdf.SetFont("Helvetica", "", 10)
	return "Helvetica", pdf.UnicodeTranslatorFromDescriptor("")
}

func writeRequestBlock(pdf *fpdf.Fpdf, family string, tr func(string) string, item dbmodels.Request) {
	pdf.SetFont(family, "B", 11)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Request #%d", item.ID)), "B", 1, "L", false, 0, "")
	pdf.SetFont(family, "", 10)
	client := item.CreatorID
	if item.Creator != nil {
		client = item.Creator.GetFullName()
	}
	lines := [][2]string{
		{"Client", client},
		{"Equipment", item.GetEquipmentName()},
		{"Quantity", fmt.Sprint(item.Quantity)},
		{"Priority", string(item.Priority)},
		{"Status", item.GetStatusName()},
		{"Created", item.CreatedDate.Format(dateLayout)},
	}
	for _, line := range lines {
		pdf.CellFormat(35, 6, tr(line[0]+":"), "", 0, "L", false, 0, "")
		pdf.MultiCell(0, 6, tr(line[1]), "", "L", false)
	}
	pdf.Ln(3)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
