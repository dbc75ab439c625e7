package menu

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pigsheadbbq/site/internal/domain"
)

// Fetcher downloads and parses menu rows from a shared spreadsheet.
type Fetcher struct {
	client *http.Client
}

// NewFetcher builds a fetcher with a bounded request timeout. Outbound calls
// fail closed rather than blocking a request indefinitely.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// FetchItems downloads the sheet's CSV export and parses it into menu items.
// Rows without an item name are skipped; a blank category defaults to "Menu".
func (f *Fetcher) FetchItems(ctx context.Context, sheetURL, gidOverride string) ([]domain.MenuItem, error) {
	exportURL := CSVExportURL(sheetURL, gidOverride)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, exportURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet export returned status %d", resp.StatusCode)
	}

	return parseItems(csv.NewReader(resp.Body))
}

func parseItems(reader *csv.Reader) ([]domain.MenuItem, error) {
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var items []domain.MenuItem
	for _, record := range records[1:] {
		item := strings.TrimSpace(field(record, columns, "item"))
		if item == "" {
			continue
		}
		category := strings.TrimSpace(field(record, columns, "category"))
		if category == "" {
			category = "Menu"
		}
		items = append(items, domain.MenuItem{
			Category:    category,
			Item:        item,
			Description: strings.TrimSpace(field(record, columns, "description")),
			Price:       strings.TrimSpace(field(record, columns, "price")),
		})
	}
	return items, nil
}

func field(record []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}
