// Package scraper extracts event records from 19hz.info listing pages.
//
// A listing page carries one table per region, one row per event, with
// loosely structured, human-authored cell content: free-text dates and
// times, "Title @ Venue (City)" conventions, comma-separated genre and
// organizer lists, and price/age text like "$10-15 / 21+". The extraction
// layer turns each row into a typed event record through a set of
// independent pattern-matching rules, each tolerant of absent or malformed
// content. The single row-validity gate is a recognizable weekday token in
// the first cell; rows without one (headers, separators) are silently
// dropped. Data-quality problems never raise — a field that cannot be
// extracted degrades to its documented default.
package scraper
