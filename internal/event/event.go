package event

import (
	"bytes"
	"encoding/json"
)

// Event represents one extracted event listing.
//
// Date, Time, Title and Venue are always set, falling back to the literal
// defaults "TBA" (date/time/venue) or "Event" (title) when the source row
// does not carry the field. Price, AgeRestriction and URL are nil when
// absent; the renderer omits their lines entirely, which is why they are
// not normalized to sentinel strings. Genres, Organizers and
// AdditionalLinks are always present in the JSON form — extraction
// allocates the slices even when empty, and an empty link mapping
// serializes as {}.
type Event struct {
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	Title           string   `json:"title"`
	Venue           string   `json:"venue"`
	Location        string   `json:"location"`
	Genres          []string `json:"genres"`
	Price           *string  `json:"price,omitempty"`
	AgeRestriction  *string  `json:"age_restriction,omitempty"`
	Organizers      []string `json:"organizers"`
	URL             *string  `json:"url,omitempty"`
	AdditionalLinks Links    `json:"additional_links"`
}

// Link is one labeled hyperlink taken from a listing cell.
type Link struct {
	Text string
	URL  string
}

// Links is an ordered label -> URL mapping. A label keeps the position of
// its first appearance; setting an existing label overwrites its URL in
// place (last write wins).
type Links []Link

// Set returns the mapping with text bound to url.
func (l Links) Set(text, url string) Links {
	for i := range l {
		if l[i].Text == text {
			l[i].URL = url
			return l
		}
	}
	return append(l, Link{Text: text, URL: url})
}

// Get returns the URL bound to text, if any.
func (l Links) Get(text string) (string, bool) {
	for i := range l {
		if l[i].Text == text {
			return l[i].URL, true
		}
	}
	return "", false
}

// MarshalJSON encodes the mapping as a JSON object in insertion order.
func (l Links) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, link := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(link.Text)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(link.URL)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
