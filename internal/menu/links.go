// Package menu resolves Google Docs share links and turns the menu
// spreadsheet into downloadable PDF documents.
package menu

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	sheetIDPattern      = regexp.MustCompile(`(?i)^https://docs\.google\.com/spreadsheets/d/([a-zA-Z0-9-_]+)(?:/.+)?$`)
	slidesIDPattern     = regexp.MustCompile(`(?i)^https://docs\.google\.com/presentation/d/([a-zA-Z0-9-_]+)(?:/.+)?$`)
	publishedCSVPattern = regexp.MustCompile(`(?i)^https://docs\.google\.com/spreadsheets/d/e/.+/pub\?output=csv(?:&.*)?$`)
)

// SheetLinks holds the derived URLs for a shared spreadsheet.
type SheetLinks struct {
	PDF   string
	Sheet string
	CSV   string
	Embed string
}

// SlideLinks holds the derived URLs for a shared slide deck.
type SlideLinks struct {
	Present string
	Embed   string
}

// ResolveSheetLinks derives export, direct-view, CSV and embed URLs from a
// shareable spreadsheet URL. gidOverride wins over a gid query parameter on
// the input URL. When the URL does not match the expected shape every derived
// link falls back to the original URL unchanged, so a malformed configuration
// degrades to shallow links instead of failing the build.
func ResolveSheetLinks(sheetURL, gidOverride string) SheetLinks {
	sheetURL = strings.TrimSpace(sheetURL)
	sheetID := sheetIDFromURL(sheetURL)

	gid := strings.TrimSpace(gidOverride)
	if gid == "" {
		gid = gidFromURL(sheetURL)
	}

	if sheetID == "" {
		return SheetLinks{PDF: sheetURL, Sheet: sheetURL, CSV: sheetURL, Embed: sheetURL}
	}

	gidQuery := ""
	gidPath := "/edit"
	if gid != "" {
		gidQuery = "&gid=" + gid
		gidPath = "/edit#gid=" + gid
	}
	base := "https://docs.google.com/spreadsheets/d/" + sheetID
	return SheetLinks{
		PDF:   base + "/export?format=pdf" + gidQuery,
		Sheet: base + gidPath,
		CSV:   base + "/export?format=csv" + gidQuery,
		Embed: base + "/preview",
	}
}

// ResolveSlideLinks derives present and embed URLs from a shareable slide
// deck URL, with the same fail-open behavior as ResolveSheetLinks.
func ResolveSlideLinks(slidesURL string) SlideLinks {
	slidesURL = strings.TrimSpace(slidesURL)
	match := slidesIDPattern.FindStringSubmatch(slidesURL)
	if match == nil {
		return SlideLinks{Present: slidesURL, Embed: slidesURL}
	}

	base := "https://docs.google.com/presentation/d/" + match[1]
	return SlideLinks{
		Present: base + "/present",
		Embed:   base + "/embed?start=false&loop=false&delayms=5000",
	}
}

// CSVExportURL converts a shareable spreadsheet URL into its CSV export
// form. URLs already published as CSV pass through untouched; unrecognized
// URLs are returned unchanged.
func CSVExportURL(sheetURL, gidOverride string) string {
	if publishedCSVPattern.MatchString(sheetURL) {
		return sheetURL
	}

	sheetID := sheetIDFromURL(sheetURL)
	if sheetID == "" {
		return sheetURL
	}

	exportURL := "https://docs.google.com/spreadsheets/d/" + sheetID + "/export?format=csv"
	if gid := strings.TrimSpace(gidOverride); gid != "" {
		return exportURL + "&gid=" + gid
	}
	return exportURL
}

func sheetIDFromURL(sheetURL string) string {
	match := sheetIDPattern.FindStringSubmatch(sheetURL)
	if match == nil {
		return ""
	}
	return match[1]
}

func gidFromURL(sheetURL string) string {
	parsed, err := url.Parse(sheetURL)
	if err != nil {
		return ""
	}
	return parsed.Query().Get("gid")
}
