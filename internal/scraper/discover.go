package scraper

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jhalvorsen/hz-events/internal/region"
)

// listingMarker is the substring identifying a listing-page hyperlink on
// the site's root page.
const listingMarker = "eventlisting"

// CheckNewRegions scans the site's root page for listing-page links and
// reports which filenames are not in the registry. It compares filenames
// only; a discovered filename is not verified to denote a genuinely new,
// distinct region. Returned slices are deduplicated and sorted.
func (s *Scraper) CheckNewRegions(ctx context.Context) (found, unknown []string, err error) {
	html, err := s.fetcher.Fetch(ctx, region.BaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching root page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil, fmt.Errorf("parsing root page: %w", err)
	}

	seen := make(map[string]bool)
	doc.Find("a[href*='" + listingMarker + "']").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok || !strings.Contains(href, listingMarker) {
			return
		}
		name := listingFilename(href)
		if name != "" && !seen[name] {
			seen[name] = true
			found = append(found, name)
		}
	})
	sort.Strings(found)

	known := s.registry.Filenames()
	for _, name := range found {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	return found, unknown, nil
}

// listingFilename returns the filename portion of an href: the path
// segment after the last "/", with any query string stripped.
func listingFilename(href string) string {
	name := href[strings.LastIndex(href, "/")+1:]
	if i := strings.Index(name, "?"); i >= 0 {
		name = name[:i]
	}
	return name
}
