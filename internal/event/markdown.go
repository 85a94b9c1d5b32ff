package event

import (
	"fmt"
	"strings"
)

// Markdown renders the event as a markdown block: title heading, labeled
// lines for the always-present fields, optional lines only when the field
// is set, and a closing horizontal rule.
func (e *Event) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s\n", e.Title)
	fmt.Fprintf(&b, "**Date:** %s\n", e.Date)
	fmt.Fprintf(&b, "**Time:** %s\n", e.Time)
	fmt.Fprintf(&b, "**Venue:** %s", e.Venue)

	if len(e.Genres) > 0 {
		fmt.Fprintf(&b, "\n**Genres:** %s", strings.Join(e.Genres, ", "))
	}
	if e.Price != nil {
		fmt.Fprintf(&b, "\n**Price:** %s", *e.Price)
	}
	if e.AgeRestriction != nil {
		fmt.Fprintf(&b, "\n**Age:** %s", *e.AgeRestriction)
	}
	if len(e.Organizers) > 0 {
		fmt.Fprintf(&b, "\n**Organizers:** %s", strings.Join(e.Organizers, ", "))
	}
	if e.URL != nil {
		fmt.Fprintf(&b, "\n**Link:** %s", *e.URL)
	}
	if len(e.AdditionalLinks) > 0 {
		b.WriteString("\n**Additional Links:**")
		for _, link := range e.AdditionalLinks {
			fmt.Fprintf(&b, "\n  - [%s](%s)", link.Text, link.URL)
		}
	}

	b.WriteString("\n\n---\n")
	return b.String()
}

// Markdown renders the page: a heading for the region, an optional search
// note, the page position line, every event block, and a next-page hint
// when more events remain.
func (p *EventPage) Markdown(regionName, searchTerm string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Electronic Music Events - %s\n", regionName)

	if searchTerm != "" {
		fmt.Fprintf(&b, "\nSearch: '%s'\n", searchTerm)
	}

	fmt.Fprintf(&b, "\n**Page %d of %d** (%d total events)\n\n", p.Page, p.TotalPages(), p.TotalEvents)

	for _, evt := range p.Events {
		b.WriteString(evt.Markdown())
		b.WriteString("\n")
	}

	if p.HasMore {
		fmt.Fprintf(&b, "\n*Use page=%d to see more events*\n", p.Page+1)
	}

	return b.String()
}
