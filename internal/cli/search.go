package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <from-city> <to-city>",
		Short: "Search itineraries with connections between two cities",
		Long: "Enumerate every itinerary of at most --max-connections hops between two\n" +
			"cities. Hops that revisit a city or are longer than the straight distance\n" +
			"between the two cities are not followed.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSearch(cmd, args[0], args[1])
		},
	}

	cmd.Flags().Int("max-connections", defaultMaxConnections, "maximum number of hops per itinerary")
	cmd.Flags().Duration("timeout", defaultTimeout, "abort the search after this long")
	cmd.Flags().String("reference", "first", "reference distance policy: first, min, max, average")
	a.bindFlag(keyMaxConnections, cmd.Flags().Lookup("max-connections"))
	a.bindFlag(keyTimeout, cmd.Flags().Lookup("timeout"))
	a.bindFlag(keyReferencePolicy, cmd.Flags().Lookup("reference"))
	return cmd
}

func (a *app) runSearch(cmd *cobra.Command, from, to string) error {
	s, err := a.openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	its, err := s.engine.FindCityIndirectRoutes(ctx, from, to, a.cfg.MaxConnections)
	if errors.Is(err, context.DeadlineExceeded) {
		return sysError("search timed out after %s", a.cfg.Timeout)
	}
	if err != nil {
		return sysError("searching itineraries: %w", err)
	}

	views := itineraryViews(its)
	if a.flags.jsonMode {
		return writeJSON(cmd.OutOrStdout(), views)
	}
	printItineraries(cmd, from, to, views)
	return nil
}

func printItineraries(cmd *cobra.Command, from, to string, views []itineraryView) {
	out := cmd.OutOrStdout()
	if len(views) == 0 {
		fmt.Fprintf(out, "No itineraries from %s to %s.\n", from, to)
		return
	}
	for i, v := range views {
		fmt.Fprintf(out, "%d. %s  (%d hop(s), %.0f km, displacement %.0f km)\n",
			i+1, strings.Join(v.Path(), " -> "), v.Hops, v.TotalKm, v.DisplacementKm)
		for _, l := range v.Links {
			fmt.Fprintf(out, "     %s -> %s  %.0f km  %s\n",
				l.From, l.To, l.DistanceKm, strings.Join(l.Airlines, ", "))
		}
	}
	fmt.Fprintf(out, "Total: %d itinerary(ies)\n", len(views))
}
