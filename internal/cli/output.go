package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jhalvorsen/hz-events/internal/event"
	"github.com/jhalvorsen/hz-events/internal/region"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatMarkdown OutputFormat = "markdown"
	FormatJSON     OutputFormat = "json"
)

// eventsResult is the JSON envelope for one region's page of events.
type eventsResult struct {
	Region     string `json:"region"`
	RegionName string `json:"region_name"`
	Search     string `json:"search,omitempty"`
	*event.EventPage
	TotalPages int `json:"total_pages"`
}

// writeEventsPage writes one page of events in the requested format.
func writeEventsPage(w io.Writer, page *event.EventPage, reg *region.Region, search string, format OutputFormat) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(&eventsResult{
			Region:     reg.Key,
			RegionName: reg.Name,
			Search:     search,
			EventPage:  page,
			TotalPages: page.TotalPages(),
		})
	case FormatMarkdown:
		_, err := fmt.Fprintln(w, page.Markdown(reg.Name, search))
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
