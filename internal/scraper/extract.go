package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jhalvorsen/hz-events/internal/event"
	"github.com/jhalvorsen/hz-events/internal/region"
)

// Extraction patterns, matching the listing site's conventions. First match
// wins everywhere.
var (
	// A date is a three-letter weekday abbreviation (case-sensitive) plus
	// whatever follows it on the same line, e.g. "Fri: Oct 10".
	datePattern = regexp.MustCompile(`(Mon|Tue|Wed|Thu|Fri|Sat|Sun)[^\n]*`)

	// A time is the first parenthesized substring, e.g. "(10pm-4am)".
	timePattern = regexp.MustCompile(`\(([^)]+)\)`)

	// A price is a dollar amount or the words "free"/"donation".
	pricePattern = regexp.MustCompile(`(?i)\$[\d.]+|free|donation`)

	// An age restriction is "21+", "18+", "All ages", or any digits
	// immediately followed by "+".
	agePattern = regexp.MustCompile(`(?i)\b(21\+|18\+|All ages|\d+\+)`)

	// A trailing parenthesized suffix on a venue is a city annotation,
	// e.g. "Venue Name (San Francisco)".
	venueCityPattern = regexp.MustCompile(`\([^)]+\)$`)
)

// cellText flattens a cell's nested markup into plain text: each line
// trimmed, blank lines dropped, remaining lines joined by newline. Line
// structure is preserved because the date pattern matches up to line end.
func cellText(sel *goquery.Selection) string {
	lines := strings.Split(sel.Text(), "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if t := strings.TrimSpace(line); t != "" {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, "\n")
}

// extractDateTime pulls the date and time out of the date/time cell's
// text. An empty date means no weekday token was found and the row is not
// an event. The time falls back to "TBA".
func extractDateTime(text string) (date, eventTime string) {
	date = datePattern.FindString(text)
	if date == "" {
		return "", ""
	}

	eventTime = "TBA"
	if m := timePattern.FindStringSubmatch(text); m != nil {
		eventTime = m[1]
	}
	return date, eventTime
}

// extractTitleURL pulls the title and primary URL out of the title/venue
// cell. A hyperlink wins: its visible text is the title and its href the
// URL. Otherwise the text before the first "@" is the title, or the
// literal "Event" when there is no "@" at all.
func extractTitleURL(cell *goquery.Selection) (string, *string) {
	link := cell.Find("a").First()
	if link.Length() > 0 {
		href, _ := link.Attr("href")
		return strings.TrimSpace(link.Text()), absoluteURL(href)
	}

	text := cellText(cell)
	if i := strings.Index(text, "@"); i >= 0 {
		return strings.TrimSpace(text[:i]), nil
	}
	return "Event", nil
}

// extractVenue pulls the venue out of the title/venue cell: the text after
// the first "@", with a trailing city annotation stripped. No "@" means no
// venue, rendered as "TBA".
func extractVenue(cell *goquery.Selection) string {
	text := cellText(cell)
	i := strings.Index(text, "@")
	if i < 0 {
		return "TBA"
	}

	venue := strings.TrimSpace(text[i+1:])
	return strings.TrimSpace(venueCityPattern.ReplaceAllString(venue, ""))
}

// splitList splits comma-separated cell text into trimmed, non-empty
// tokens, preserving order and duplicates. Used for genres and organizers.
func splitList(text string) []string {
	parts := strings.Split(text, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// extractPriceAge scans the price/age cell text for a price and an age
// restriction independently; either, both, or neither may match.
func extractPriceAge(text string) (price, age *string) {
	if m := pricePattern.FindString(text); m != "" {
		price = &m
	}
	if m := agePattern.FindString(text); m != "" {
		age = &m
	}
	return price, age
}

// extractLinks collects every hyperlink in the extra-links cell with
// non-empty visible text and a resolvable href. A repeated label keeps its
// first position but takes the later URL.
func extractLinks(cell *goquery.Selection) event.Links {
	var links event.Links
	cell.Find("a").Each(func(_ int, a *goquery.Selection) {
		text := strings.TrimSpace(a.Text())
		href, _ := a.Attr("href")
		if text == "" {
			return
		}
		if abs := absoluteURL(href); abs != nil {
			links = links.Set(text, *abs)
		}
	})
	return links
}

// absoluteURL resolves an href against the fixed base origin: absolute
// hrefs pass through, root-relative ones get the origin prefixed, and any
// other form is passed through as-is (best-effort, not strict RFC
// resolution). An empty href resolves to nothing.
func absoluteURL(href string) *string {
	if href == "" {
		return nil
	}

	var abs string
	switch {
	case strings.HasPrefix(href, "http"):
		abs = href
	case strings.HasPrefix(href, "/"):
		abs = region.BaseURL + href
	default:
		abs = href
	}
	return &abs
}
