package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/flights/pkg/types"
)

// routeView is one direct route as presented to the user.
type routeView struct {
	types.Route
	SourceCity  string `json:"source_city"`
	DestCity    string `json:"dest_city"`
	AirlineName string `json:"airline_name,omitempty"`
}

func newRoutesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "routes <from-city> <to-city>",
		Short: "List direct routes between two cities",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := a.openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			routes, err := s.engine.FindCityRoutes(ctx, args[0], args[1])
			if err != nil {
				return sysError("finding routes: %w", err)
			}

			codes := make([]string, 0, len(routes))
			for _, r := range routes {
				codes = append(codes, r.AirlineCode)
			}
			airlines, err := s.backend.Airlines(ctx, codes)
			if err != nil {
				return sysError("resolving airlines: %w", err)
			}

			views := make([]routeView, 0, len(routes))
			for _, r := range routes {
				pair, err := s.network.FindCitiesConnectedByRoute(ctx, r)
				if err != nil && !errors.Is(err, types.ErrNotFound) {
					return sysError("resolving cities of %s->%s: %w", r.SourceCode, r.DestCode, err)
				}
				views = append(views, routeView{
					Route:       r,
					SourceCity:  pair.Source,
					DestCity:    pair.Dest,
					AirlineName: airlines[r.AirlineCode].Name,
				})
			}

			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), views)
			}
			return printRoutes(cmd, args[0], args[1], views)
		},
	}
}

func printRoutes(cmd *cobra.Command, from, to string, views []routeView) error {
	out := cmd.OutOrStdout()
	if len(views) == 0 {
		fmt.Fprintf(out, "No direct routes from %s to %s.\n", from, to)
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FROM\tTO\tAIRLINE")
	for _, v := range views {
		airline := v.AirlineCode
		if v.AirlineName != "" {
			airline += " " + v.AirlineName
		}
		fmt.Fprintf(w, "%s (%s)\t%s (%s)\t%s\n", v.SourceCode, v.SourceCity, v.DestCode, v.DestCity, airline)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Total: %d route(s)\n", len(views))
	return nil
}
