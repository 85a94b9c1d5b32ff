// Package event defines the records produced by listing extraction.
//
// An Event is one occurrence pulled out of a region's listing table, with
// free-text date/time/venue fields, optional price/age/url fields, and an
// ordered set of additional links. An EventPage is a bounded slice of the
// full event sequence plus pagination metadata. Both render themselves as
// markdown for the output surface.
package event
