package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newAirportsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "airports <city>",
		Short: "List the airports of a city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			airports, err := s.network.FindAirports(cmd.Context(), args[0])
			if err != nil {
				return sysError("finding airports of %s: %w", args[0], err)
			}

			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), airports)
			}
			out := cmd.OutOrStdout()
			if len(airports) == 0 {
				fmt.Fprintf(out, "No airports found in %s.\n", args[0])
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tNAME\tCOUNTRY\tLAT\tLNG")
			for _, ap := range airports {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.4f\t%.4f\n", ap.Code, ap.Name, ap.Country, ap.Latitude, ap.Longitude)
			}
			return w.Flush()
		},
	}
}
