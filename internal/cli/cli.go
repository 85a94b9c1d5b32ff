package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jhalvorsen/hz-events/internal/event"
	"github.com/jhalvorsen/hz-events/internal/fetch"
	"github.com/jhalvorsen/hz-events/internal/logger"
	"github.com/jhalvorsen/hz-events/internal/region"
	"github.com/jhalvorsen/hz-events/internal/scraper"
	"github.com/spf13/cobra"
)

const ExitError = 1

// newFetcher builds the page fetcher; tests swap it to serve canned pages.
var newFetcher = func() fetch.Fetcher { return fetch.NewClient() }

var (
	flagRegions      string
	flagVerbose      bool
	flagPage         int
	flagPageSize     int
	flagSearch       string
	flagFormat       string
	flagMaxPerRegion int
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hz-events",
		Short: "Browse electronic music event listings from 19hz.info",
		Long: `A CLI tool to browse electronic music event listings from 19hz.info.
Fetches a region's listing page, extracts the events, and renders them as
paginated, searchable markdown.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				logRunMetrics()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&flagRegions, "regions", "", "Path to a YAML region registry (default: built-in regions)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newEventsCmd())
	cmd.AddCommand(newRegionsCmd())
	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newCheckRegionsCmd())

	return cmd
}

func newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events <region>",
		Short: "Fetch event listings for a region",
		Args:  cobra.ExactArgs(1),
		RunE:  runEvents,
	}

	cmd.Flags().IntVar(&flagPage, "page", 1, "Page number")
	cmd.Flags().IntVar(&flagPageSize, "page-size", event.DefaultPageSize, "Events per page")
	cmd.Flags().StringVar(&flagSearch, "search", "", "Filter events by search term")
	cmd.Flags().StringVar(&flagFormat, "format", "markdown", "Output format: markdown or json")

	return cmd
}

func newRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List all available regions",
		Args:  cobra.NoArgs,
		RunE:  runRegions,
	}
}

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search for events across all regions",
		Args:  cobra.ExactArgs(1),
		RunE:  runSearch,
	}

	cmd.Flags().IntVar(&flagMaxPerRegion, "max-per-region", 5, "Maximum results per region")

	return cmd
}

func newCheckRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-regions",
		Short: "Check 19hz.info for listing pages missing from the registry",
		Args:  cobra.NoArgs,
		RunE:  runCheckRegions,
	}
}

// setup configures logging and builds the scraper from the flags.
func setup() (*scraper.Scraper, error) {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	registry := region.DefaultRegistry()
	if flagRegions != "" {
		var err error
		registry, err = region.LoadFile(flagRegions)
		if err != nil {
			return nil, err
		}
	}

	return scraper.New(newFetcher(), registry), nil
}

// logRunMetrics writes the fetch counters and timings collected during the
// run to the debug log.
func logRunMetrics() {
	logger.Debug("run metrics", logger.Fields(logger.GetMetricsSnapshot()))
}

// runEvents fetches and renders one region's listing page.
func runEvents(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatMarkdown && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'markdown' or 'json')", flagFormat)
	}

	s, err := setup()
	if err != nil {
		return err
	}

	page, reg, err := s.EventsPage(cmd.Context(), args[0], flagPage, flagPageSize, flagSearch)
	if err != nil {
		// An unknown region is a reported condition, not a failure.
		var unknown *region.UnknownKeyError
		if errors.As(err, &unknown) {
			fmt.Fprintln(cmd.OutOrStdout(), unknown.Error())
			return nil
		}
		return err
	}

	return writeEventsPage(cmd.OutOrStdout(), page, reg, flagSearch, format)
}

// runRegions lists the registry as markdown.
func runRegions(cmd *cobra.Command, args []string) error {
	s, err := setup()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "# Available Regions")
	fmt.Fprintln(w)
	for _, reg := range s.Registry().All() {
		fmt.Fprintf(w, "- **%s** - %s\n", reg.Key, reg.Name)
	}
	return nil
}

// runSearch fans out the search term across every region. A failing region
// renders an error section and the remaining regions still proceed.
func runSearch(cmd *cobra.Command, args []string) error {
	term := args[0]

	s, err := setup()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "# Search Results for '%s'\n\n", term)

	totalFound := 0
	for _, reg := range s.Registry().All() {
		page, _, err := s.EventsPage(cmd.Context(), reg.Key, 1, flagMaxPerRegion, term)
		if err != nil {
			logger.Warn("region search failed", logger.Fields{"region": reg.Key})
			fmt.Fprintf(w, "\n## %s\nError: %s\n", reg.Name, err)
			continue
		}
		if len(page.Events) == 0 {
			continue
		}

		fmt.Fprintf(w, "\n## %s (%d matches)\n", reg.Name, page.TotalEvents)
		for _, evt := range page.Events {
			fmt.Fprintf(w, "- **%s** - %s @ %s\n", evt.Date, evt.Title, evt.Venue)
			if evt.URL != nil {
				fmt.Fprintf(w, "  [%s](%s)\n", *evt.URL, *evt.URL)
			}
		}
		totalFound += page.TotalEvents
	}

	if totalFound == 0 {
		fmt.Fprintln(w, "No events found matching your search.")
	} else {
		fmt.Fprintf(w, "\n**Total matches across all regions: %d**\n", totalFound)
	}
	return nil
}

// runCheckRegions reports listing pages on the site that the registry does
// not know about.
func runCheckRegions(cmd *cobra.Command, args []string) error {
	s, err := setup()
	if err != nil {
		return err
	}

	found, unknown, err := s.CheckNewRegions(cmd.Context())
	if err != nil {
		return fmt.Errorf("checking for new regions: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "# Region Check Results")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "**Known regions:** %d\n", s.Registry().Len())
	fmt.Fprintf(w, "**Found on site:** %d\n\n", len(found))

	if len(unknown) > 0 {
		fmt.Fprintln(w, "## New regions found:")
		for _, name := range unknown {
			fmt.Fprintf(w, "- %s\n", name)
		}
		fmt.Fprintln(w, "\nThese should be added to the region registry.")
	} else {
		fmt.Fprintln(w, "All regions are up to date.")
	}
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
