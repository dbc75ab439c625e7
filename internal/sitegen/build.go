package sitegen

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pigsheadbbq/site/internal/menu"
)

const baseLayout = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{{TITLE}}</title>
    <meta
      name="description"
      content="{{DESCRIPTION}}"
    />
    <link rel="preconnect" href="https://fonts.googleapis.com" />
    <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin />
    <link
      href="https://fonts.googleapis.com/css2?family=Bebas+Neue&family=Inter:wght@400;500;700;800&display=swap"
      rel="stylesheet"
    />
    <link rel="stylesheet" href="styles/main.css" />
  </head>
  <body>
    <a class="skip-link" href="#main-content">Skip to main content</a>
{{HEADER}}

{{CONTENT}}

{{FOOTER}}
    <script src="scripts/main.js"></script>
  </body>
</html>
`

// Page describes one generated page of the site.
type Page struct {
	Filename    string
	Title       string
	Description string
	ContentFile string
	HeaderVars  map[string]string
}

// DefaultPages lists the pages the builder produces.
func DefaultPages() []Page {
	return []Page{
		{
			Filename:    "index.html",
			Title:       "Pigs Head BBQ | Slow-Smoked in Southwest Michigan",
			Description: "A modern, mobile-friendly rebuild of the Pigs Head BBQ website featuring quick actions, highlighted menu favorites, testimonials, and catering details.",
			ContentFile: "index.content.html",
			HeaderVars: map[string]string{
				"FACEBOOK_HREF":         "#facebook",
				"REVIEWS_HREF":          "#reviews",
				"MENU_CURRENT_ATTR":     "",
				"CATERING_CURRENT_ATTR": "",
				"FACEBOOK_CURRENT_ATTR": "",
				"REVIEWS_CURRENT_ATTR":  "",
				"ABOUT_CURRENT_ATTR":    "",
			},
		},
		{
			Filename:    "about.html",
			Title:       "About | Pigs Head BBQ",
			Description: "Read the Pigs Head BBQ story and how our family-owned team brings craft smokehouse flavors and heartfelt hospitality.",
			ContentFile: "about.content.html",
			HeaderVars: map[string]string{
				"FACEBOOK_HREF":         "index.html#facebook",
				"REVIEWS_HREF":          "index.html#reviews",
				"MENU_CURRENT_ATTR":     "",
				"CATERING_CURRENT_ATTR": "",
				"FACEBOOK_CURRENT_ATTR": "",
				"REVIEWS_CURRENT_ATTR":  "",
				"ABOUT_CURRENT_ATTR":    ` aria-current="page"`,
			},
		},
	}
}

// BuildInput bundles the resolved document links substituted into every page.
type BuildInput struct {
	MenuLinks      menu.SheetLinks
	CateringLinks  menu.SheetLinks
	WebMenuSlides  menu.SlideLinks
	TruckMenuSlide menu.SlideLinks
}

// Build renders every page into siteDir using the partials under
// siteDir/templates. Partials are indented four spaces into the base layout
// so the generated markup stays readable.
func Build(siteDir string, pages []Page, input BuildInput) error {
	templatesDir := filepath.Join(siteDir, "templates")

	headerTemplate, err := os.ReadFile(filepath.Join(templatesDir, "header.html"))
	if err != nil {
		return err
	}
	footerTemplate, err := os.ReadFile(filepath.Join(templatesDir, "footer.html"))
	if err != nil {
		return err
	}

	for _, page := range pages {
		contentTemplate, err := os.ReadFile(filepath.Join(templatesDir, page.ContentFile))
		if err != nil {
			return err
		}

		pageVars := map[string]string{
			"MENU_HREF":                 input.MenuLinks.PDF,
			"CATERING_HREF":             input.CateringLinks.PDF,
			"MENU_SHEET_HREF":           input.MenuLinks.Sheet,
			"MENU_CSV_HREF":             input.MenuLinks.CSV,
			"MENU_EMBED_HREF":           input.MenuLinks.Embed,
			"CATERING_SHEET_HREF":       input.CateringLinks.Sheet,
			"CATERING_CSV_HREF":         input.CateringLinks.CSV,
			"CATERING_EMBED_HREF":       input.CateringLinks.Embed,
			"WEBMENU_SLIDES_HREF":       input.WebMenuSlides.Present,
			"WEBMENU_SLIDES_EMBED_HREF": input.WebMenuSlides.Embed,
			"TRUCKMENU_SLIDES_HREF":     input.TruckMenuSlide.Present,
			"TRUCKMENU_SLIDES_EMBED_HREF": input.TruckMenuSlide.Embed,
		}
		for key, value := range page.HeaderVars {
			pageVars[key] = value
		}

		header := Render(string(headerTemplate), pageVars)
		content := Render(string(contentTemplate), pageVars)

		html := Render(baseLayout, map[string]string{
			"TITLE":       page.Title,
			"DESCRIPTION": page.Description,
			"HEADER":      indent(header),
			"CONTENT":     indent(content),
			"FOOTER":      indent(string(footerTemplate)),
		})

		if err := os.WriteFile(filepath.Join(siteDir, page.Filename), []byte(html+"\n"), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func indent(partial string) string {
	return strings.TrimRight("    "+strings.ReplaceAll(partial, "\n", "\n    "), " \n")
}
