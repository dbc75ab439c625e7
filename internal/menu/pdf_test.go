package menu

import (
	"bytes"
	"errors"
	"testing"

	"github.com/pigsheadbbq/site/internal/domain"
)

func TestRenderPDF(t *testing.T) {
	items := []domain.MenuItem{
		{Category: "Meats", Item: "Pulled Pork", Description: "Slow smoked over hickory for fourteen hours, hand pulled and lightly sauced", Price: "$12"},
		{Category: "Meats", Item: "Brisket", Description: "", Price: "$16"},
		{Category: "Sides", Item: "Mac & Cheese", Description: "House favorite", Price: "$5"},
	}

	pdfBytes, err := RenderPDF(items, "Smokehouse Menu")
	if err != nil {
		t.Fatalf("RenderPDF() error = %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatal("RenderPDF() returned empty document")
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Errorf("RenderPDF() output does not start with PDF header, got %q", pdfBytes[:8])
	}
}

func TestOrDashUsesEmDash(t *testing.T) {
	if got := orDash(""); got != "—" {
		t.Errorf("orDash(\"\") = %q, want em-dash", got)
	}
	if got := orDash("$12"); got != "$12" {
		t.Errorf("orDash($12) = %q, want value unchanged", got)
	}
}

func TestRenderPDFNonASCIIText(t *testing.T) {
	items := []domain.MenuItem{
		{Category: "Entrées", Item: "Jalapeño Sausage", Description: "", Price: ""},
	}

	pdfBytes, err := RenderPDF(items, "Smokehouse Menu")
	if err != nil {
		t.Fatalf("RenderPDF() error = %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatal("RenderPDF() returned empty document")
	}
}

func TestRenderPDFEmptyInput(t *testing.T) {
	if _, err := RenderPDF(nil, "Smokehouse Menu"); !errors.Is(err, ErrNoItems) {
		t.Errorf("RenderPDF(nil) error = %v, want ErrNoItems", err)
	}
}

func TestRenderPDFManyRows(t *testing.T) {
	// Enough rows to force a page break.
	var items []domain.MenuItem
	for i := 0; i < 80; i++ {
		items = append(items, domain.MenuItem{
			Category:    "Meats",
			Item:        "Item",
			Description: "A reasonably long description that will wrap across more than one line in the description column of the table",
			Price:       "$9",
		})
	}

	pdfBytes, err := RenderPDF(items, "Smokehouse Menu")
	if err != nil {
		t.Fatalf("RenderPDF() error = %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatal("RenderPDF() returned empty document")
	}
}
