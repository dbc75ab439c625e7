// Command buildsite stitches the HTML partials under SITE_DIR/templates into
// the full static pages of the marketing site, substituting resolved menu
// and slide-deck links.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/pigsheadbbq/site/internal/menu"
	"github.com/pigsheadbbq/site/internal/sitegen"
)

const (
	defaultMenuSheetURL      = "https://docs.google.com/spreadsheets/d/1dR1oA7Aox5IvtsD9qc5xaRYf-tK11IAY-8xcFkMn0LY/edit?usp=drivesdk"
	defaultWebMenuSlidesURL  = "https://docs.google.com/presentation/d/1aULBsFgYb6swNIG4wKCqNXem8KFyltls1ZADXu32x4M/edit?usp=sharing"
	defaultTruckMenuSlideURL = "https://docs.google.com/presentation/d/1dfvtuHiPxRUNf7F9QpDW3CV6YNuQkk-5uFeJRGI2oRk/edit?usp=sharing"
)

func main() {
	_ = godotenv.Load()

	siteDir := getEnv("SITE_DIR", "site/pigsheadbbq.com")
	menuSheetURL := getEnv("MENU_SHEET_URL", defaultMenuSheetURL)

	input := sitegen.BuildInput{
		MenuLinks: menu.ResolveSheetLinks(menuSheetURL, os.Getenv("MENU_SHEET_GID")),
		CateringLinks: menu.ResolveSheetLinks(
			getEnv("CATERING_SHEET_URL", menuSheetURL),
			os.Getenv("CATERING_SHEET_GID"),
		),
		WebMenuSlides:  menu.ResolveSlideLinks(getEnv("WEBMENU_SLIDES_URL", defaultWebMenuSlidesURL)),
		TruckMenuSlide: menu.ResolveSlideLinks(getEnv("TRUCKMENU_SLIDES_URL", defaultTruckMenuSlideURL)),
	}

	if err := sitegen.Build(siteDir, sitegen.DefaultPages(), input); err != nil {
		log.Fatalf("build site: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
