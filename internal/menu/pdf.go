package menu

import (
	"bytes"
	"errors"
	"sort"

	"github.com/jung-kurt/gofpdf"

	"github.com/pigsheadbbq/site/internal/domain"
)

// ErrNoItems is returned when the sheet produced no renderable rows.
var ErrNoItems = errors.New("no menu items to render")

const (
	pageMargin   = 48.0
	lineHeight   = 13.0
	cellPadding  = 6.0
	itemColWidth = 155.0
	descColWidth = 280.0
	priceColWide = 70.0
)

// RenderPDF lays out the menu items as a multi-section tabular document,
// one section per category, categories sorted by name.
func RenderPDF(items []domain.MenuItem, title string) ([]byte, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	categories := make(map[string][]domain.MenuItem)
	for _, item := range items {
		categories[item.Category] = append(categories[item.Category], item)
	}
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)

	pdf := gofpdf.New("P", "pt", "Letter", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(0x7A, 0x1D, 0x00)
	pdf.CellFormat(0, 30, "Pigs Head BBQ", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 18, tr(title), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0x55, 0x55, 0x55)
	pdf.CellFormat(0, 15, "Freshly generated from our internal menu sheet.", "", 1, "C", false, 0, "")
	pdf.Ln(14)

	for _, name := range names {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(0x7A, 0x1D, 0x00)
		pdf.CellFormat(0, 20, tr(name), "", 1, "L", false, 0, "")
		pdf.Ln(4)

		renderHeaderRow(pdf)
		for i, item := range categories[name] {
			renderItemRow(pdf, tr, item, i%2 == 1)
		}
		pdf.Ln(8)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderHeaderRow(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(0xF5, 0xF5, 0xF5)
	pdf.SetFillColor(0x1F, 0x29, 0x37)
	pdf.SetDrawColor(0xD1, 0xD5, 0xDB)
	pdf.CellFormat(itemColWidth, lineHeight+2*cellPadding, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(descColWidth, lineHeight+2*cellPadding, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(priceColWide, lineHeight+2*cellPadding, "Price", "1", 1, "L", true, 0, "")
}

func renderItemRow(pdf *gofpdf.Fpdf, tr func(string) string, item domain.MenuItem, shaded bool) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(0xD1, 0xD5, 0xDB)
	if shaded {
		pdf.SetFillColor(0xF9, 0xFA, 0xFB)
	} else {
		pdf.SetFillColor(0xFF, 0xFF, 0xFF)
	}

	cells := [3]string{tr(item.Item), tr(orDash(item.Description)), tr(orDash(item.Price))}
	widths := [3]float64{itemColWidth, descColWidth, priceColWide}

	rowLines := 1
	var split [3][]string
	for i, text := range cells {
		split[i] = pdf.SplitText(text, widths[i]-2*cellPadding)
		if len(split[i]) > rowLines {
			rowLines = len(split[i])
		}
	}
	rowHeight := float64(rowLines)*lineHeight + 2*cellPadding

	_, pageHeight := pdf.GetPageSize()
	if pdf.GetY()+rowHeight > pageHeight-pageMargin {
		pdf.AddPage()
	}

	x, y := pdf.GetXY()
	for i := range split {
		pdf.Rect(x, y, widths[i], rowHeight, "FD")
		for j, line := range split[i] {
			pdf.SetXY(x+cellPadding, y+cellPadding+float64(j)*lineHeight)
			pdf.CellFormat(widths[i]-2*cellPadding, lineHeight, line, "", 0, "L", false, 0, "")
		}
		x += widths[i]
	}
	pdf.SetXY(pageMargin, y+rowHeight)
}

// orDash substitutes an em-dash for blank cells; the caller translates it to
// the cp1252 code point the core fonts use.
func orDash(value string) string {
	if value == "" {
		return "—"
	}
	return value
}
