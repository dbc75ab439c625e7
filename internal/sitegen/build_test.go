package sitegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pigsheadbbq/site/internal/menu"
)

func writeTemplate(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write template %s: %v", name, err)
	}
}

func TestBuild(t *testing.T) {
	siteDir := t.TempDir()
	templatesDir := filepath.Join(siteDir, "templates")
	if err := os.MkdirAll(templatesDir, 0o755); err != nil {
		t.Fatalf("mkdir templates: %v", err)
	}

	writeTemplate(t, templatesDir, "header.html", `<nav><a href="{{MENU_HREF}}"{{MENU_CURRENT_ATTR}}>Menu</a><a href="{{ABOUT_CURRENT_ATTR}}">About</a></nav>`)
	writeTemplate(t, templatesDir, "footer.html", `<footer>thanks</footer>`)
	writeTemplate(t, templatesDir, "index.content.html", `<main id="main-content">home {{MENU_CSV_HREF}}</main>`)
	writeTemplate(t, templatesDir, "about.content.html", `<main id="main-content">about {{WEBMENU_SLIDES_HREF}}</main>`)

	input := BuildInput{
		MenuLinks: menu.ResolveSheetLinks(
			"https://docs.google.com/spreadsheets/d/abc123/edit?usp=drivesdk", "7"),
		CateringLinks:  menu.ResolveSheetLinks("not-a-sheet-url", ""),
		WebMenuSlides:  menu.ResolveSlideLinks("https://docs.google.com/presentation/d/deck1/edit"),
		TruckMenuSlide: menu.ResolveSlideLinks(""),
	}

	if err := Build(siteDir, DefaultPages(), input); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	indexBytes, err := os.ReadFile(filepath.Join(siteDir, "index.html"))
	if err != nil {
		t.Fatalf("read index.html: %v", err)
	}
	index := string(indexBytes)

	if !strings.Contains(index, "<title>Pigs Head BBQ | Slow-Smoked in Southwest Michigan</title>") {
		t.Error("index.html missing page title")
	}
	if !strings.Contains(index, "https://docs.google.com/spreadsheets/d/abc123/export?format=pdf&gid=7") {
		t.Error("index.html missing resolved menu pdf link")
	}
	if !strings.Contains(index, "https://docs.google.com/spreadsheets/d/abc123/export?format=csv&gid=7") {
		t.Error("index.html missing resolved menu csv link")
	}
	if strings.Contains(index, "{{MENU_HREF}}") {
		t.Error("index.html still contains unexpanded menu marker")
	}
	if !strings.HasSuffix(index, "\n") {
		t.Error("index.html should end with a newline")
	}

	aboutBytes, err := os.ReadFile(filepath.Join(siteDir, "about.html"))
	if err != nil {
		t.Fatalf("read about.html: %v", err)
	}
	about := string(aboutBytes)

	if !strings.Contains(about, `aria-current="page"`) {
		t.Error("about.html missing current-page nav attribute")
	}
	if !strings.Contains(about, "https://docs.google.com/presentation/d/deck1/present") {
		t.Error("about.html missing resolved slides link")
	}
}

func TestBuildMissingTemplates(t *testing.T) {
	siteDir := t.TempDir()
	if err := Build(siteDir, DefaultPages(), BuildInput{}); err == nil {
		t.Error("Build() with no templates dir should fail")
	}
}
