// Package filter narrows event sequences by a free-text search term.
//
// Matching is a case-insensitive substring test over an event's title,
// venue, genres and organizers. Date, price and age are deliberately not
// searched. Callers skip the filter entirely for an empty term rather than
// invoking it with "".
package filter

import (
	"strings"

	"github.com/jhalvorsen/hz-events/internal/event"
)

// Matches reports whether the event matches term, case-insensitively, on
// title, venue, any genre, or any organizer.
func Matches(evt *event.Event, term string) bool {
	t := strings.ToLower(term)

	if strings.Contains(strings.ToLower(evt.Title), t) {
		return true
	}
	if strings.Contains(strings.ToLower(evt.Venue), t) {
		return true
	}
	for _, g := range evt.Genres {
		if strings.Contains(strings.ToLower(g), t) {
			return true
		}
	}
	for _, o := range evt.Organizers {
		if strings.Contains(strings.ToLower(o), t) {
			return true
		}
	}
	return false
}

// BySearchTerm returns the events matching term, preserving order.
func BySearchTerm(events []*event.Event, term string) []*event.Event {
	matched := make([]*event.Event, 0, len(events))
	for _, evt := range events {
		if Matches(evt, term) {
			matched = append(matched, evt)
		}
	}
	return matched
}
