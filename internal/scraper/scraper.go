package scraper

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/jhalvorsen/hz-events/internal/event"
	"github.com/jhalvorsen/hz-events/internal/fetch"
	"github.com/jhalvorsen/hz-events/internal/filter"
	"github.com/jhalvorsen/hz-events/internal/logger"
	"github.com/jhalvorsen/hz-events/internal/region"
)

// minCellsForEvent is the structural precondition for a data row: date/time,
// title+venue, genres, price/age, organizers, extra links.
const minCellsForEvent = 6

// Scraper fetches and parses regional event listings.
type Scraper struct {
	fetcher  fetch.Fetcher
	registry *region.Registry
}

// New creates a Scraper using the given fetcher and region registry.
func New(fetcher fetch.Fetcher, registry *region.Registry) *Scraper {
	return &Scraper{
		fetcher:  fetcher,
		registry: registry,
	}
}

// Registry returns the region registry the scraper was built with.
func (s *Scraper) Registry() *region.Registry {
	return s.registry
}

// EventsPage fetches a region's listing, applies the optional search term,
// and returns the requested page. The region key is matched
// case-insensitively; an unknown key returns a *region.UnknownKeyError.
func (s *Scraper) EventsPage(ctx context.Context, regionKey string, page, pageSize int, search string) (*event.EventPage, *region.Region, error) {
	reg, err := s.registry.Lookup(regionKey)
	if err != nil {
		return nil, nil, err
	}

	events, err := s.FetchEvents(ctx, reg)
	if err != nil {
		return nil, reg, err
	}

	if search != "" {
		events = filter.BySearchTerm(events, search)
	}

	return event.Paginate(events, page, pageSize), reg, nil
}

// FetchEvents fetches and parses all events for one region, in document
// order.
func (s *Scraper) FetchEvents(ctx context.Context, reg *region.Region) ([]*event.Event, error) {
	start := time.Now()
	html, err := s.fetcher.Fetch(ctx, reg.URL())
	if err != nil {
		logger.IncrCounter("fetch.failure")
		return nil, fmt.Errorf("fetching %s listing: %w", reg.Key, err)
	}
	logger.IncrCounter("fetch.success")
	logger.RecordTiming("fetch", time.Since(start))

	events, err := ParseEvents(strings.NewReader(html), reg)
	if err != nil {
		return nil, err
	}

	logger.Debug("parsed listing", logger.Fields{
		"region": reg.Key,
		"events": len(events),
	})
	return events, nil
}

// ParseEvents extracts every event from a listing document, walking the
// table body rows in document order. Rows that do not parse as events are
// skipped; the only error is a document the HTML parser cannot read at
// all.
func ParseEvents(r io.Reader, reg *region.Region) ([]*event.Event, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	events := make([]*event.Event, 0)
	doc.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		if evt := parseEventRow(row, reg); evt != nil {
			events = append(events, evt)
		}
	})
	return events, nil
}

// parseEventRow turns a single table row into an event, or nil when the
// row is not an event: fewer than six cells, or no weekday token in the
// first cell. Everything else degrades per field instead of failing.
func parseEventRow(row *goquery.Selection, reg *region.Region) *event.Event {
	cells := row.Find("td")
	if cells.Length() < minCellsForEvent {
		return nil
	}

	date, eventTime := extractDateTime(cellText(cells.Eq(0)))
	if date == "" {
		// Row-validity gate: no recognizable date, not an event row.
		return nil
	}

	title, url := extractTitleURL(cells.Eq(1))
	venue := extractVenue(cells.Eq(1))
	genres := splitList(cellText(cells.Eq(2)))
	price, age := extractPriceAge(cellText(cells.Eq(3)))
	organizers := splitList(cellText(cells.Eq(4)))

	var links event.Links
	if cells.Length() > 5 {
		links = extractLinks(cells.Eq(5))
	}

	return &event.Event{
		Date:            date,
		Time:            eventTime,
		Title:           title,
		Venue:           venue,
		Location:        reg.Name,
		Genres:          genres,
		Price:           price,
		AgeRestriction:  age,
		Organizers:      organizers,
		URL:             url,
		AdditionalLinks: links,
	}
}
