// Package fetch extracts the placeable item catalog from the
// awakening.wiki Placeables category and writes it as the catalog JSON
// the planner loads.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fatih/color"

	"github.com/gizmo3030/duneplan/internal/catalog"
)

// Fetcher scrapes item records from the wiki. One fetch is a single
// in-flight operation; cancel it through the context.
type Fetcher struct {
	cfg    Config
	client *http.Client
}

// New builds a Fetcher from the given configuration.
func New(cfg Config) *Fetcher {
	return &Fetcher{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

// FetchCatalog scrapes every item linked from the Placeables category.
// Pages that fail to fetch are skipped with a warning so one broken
// page cannot sink the whole extract. Manual override records are
// merged by name before returning.
func (f *Fetcher) FetchCatalog(ctx context.Context) ([]catalog.ItemJSON, error) {
	links, err := f.ItemLinks(ctx)
	if err != nil {
		return nil, err
	}
	color.Cyan("Found %d placeable pages", len(links))

	var items []catalog.ItemJSON
	for i, link := range links {
		if i > 0 && f.cfg.RequestDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(f.cfg.RequestDelay):
			}
		}

		item, err := f.FetchItem(ctx, link)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			color.Yellow("Warning: skipping %s: %v", link, err)
			continue
		}
		color.Cyan("[%d/%d] %s: %d materials, power %+g, %d consumables",
			i+1, len(links), item.Name, len(item.MaterialCost), item.Power, len(item.Consumables))
		items = append(items, item)
	}

	return MergeManual(items, ManualItems()), nil
}

// ItemLinks scrapes the category page for links to item pages.
func (f *Fetcher) ItemLinks(ctx context.Context) ([]string, error) {
	doc, err := f.get(ctx, f.cfg.CategoryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category page: %w", err)
	}

	var links []string
	doc.Find("div#mw-pages li a").Each(func(_ int, a *goquery.Selection) {
		if href, ok := a.Attr("href"); ok {
			links = append(links, f.cfg.BaseURL+href)
		}
	})
	if len(links) == 0 {
		return nil, fmt.Errorf("no item links found at %s; page structure may have changed", f.cfg.CategoryURL)
	}
	return links, nil
}

// FetchItem scrapes a single item page into a catalog record.
func (f *Fetcher) FetchItem(ctx context.Context, pageURL string) (catalog.ItemJSON, error) {
	doc, err := f.get(ctx, pageURL)
	if err != nil {
		return catalog.ItemJSON{}, err
	}

	name := strings.TrimSpace(doc.Find("h1").First().Text())
	if name == "" {
		name = pageTitleFromURL(pageURL)
	}
	if name == "" {
		return catalog.ItemJSON{}, fmt.Errorf("could not determine item name for %s", pageURL)
	}

	return parseItemPage(doc, name), nil
}

func (f *Fetcher) get(ctx context.Context, rawURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: unexpected status %s", rawURL, resp.Status)
	}
	return goquery.NewDocumentFromReader(resp.Body)
}

// WriteCatalog writes the extracted records as the catalog document.
func WriteCatalog(path string, items []catalog.ItemJSON) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}

func pageTitleFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	last := u.Path[strings.LastIndex(u.Path, "/")+1:]
	last, err = url.PathUnescape(last)
	if err != nil {
		return ""
	}
	return strings.ReplaceAll(last, "_", " ")
}
