// Package cli implements the command-line interface for hz-events.
//
// The cli package provides the Cobra-based CLI with subcommands for
// fetching a region's event listing (paginated, searchable, rendered as
// markdown or JSON), listing the known regions, searching across all
// regions, and checking the site for listing pages missing from the
// registry. It wires the region registry, fetcher and scraper together;
// all state is built per invocation.
package cli
