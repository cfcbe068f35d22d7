package commands

import (
	"github.com/spf13/cobra"

	"github.com/smarthub/hubfare/internal/catalog"
)

func compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "compare FROM TO",
		Short:   "Compare the direct fare with every hub option, cheapest first",
		Example: "  hubctl compare CDG BKK",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), d.engine.Compare(args[0], args[1]))
		},
	}
}

func recommendCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "recommend FROM TO",
		Short:   "Rank hub routes by score",
		Example: "  hubctl recommend CDG BKK",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), d.engine.Recommend(args[0], args[1]))
		},
	}
}

func searchCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "search FROM TO",
		Short: "Price a dated journey live, or simulated when the provider is unavailable",
		Example: `  hubctl search CDG BKK --date 01/12/2026
  KIWI_API_KEY=... hubctl search JFK SYD --date 05/03/2027`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), d.bridge.FetchOrSimulate(cmd.Context(), args[0], args[1], date))
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Travel date DD/MM/YYYY (required)")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func hubStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hub-stats HUB",
		Short: "Aggregate savings over every route via a hub",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), d.engine.HubStats(args[0]))
		},
	}
}

func hubsCmd() *cobra.Command {
	var ranked bool

	cmd := &cobra.Command{
		Use:   "hubs",
		Short: "List hub airports",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load(cmd.Context())
			if err != nil {
				return err
			}
			if ranked {
				return writeJSON(cmd.OutOrStdout(), d.engine.HubsRanked())
			}
			return writeJSON(cmd.OutOrStdout(), d.engine.Catalog().Hubs())
		},
	}
	cmd.Flags().BoolVar(&ranked, "ranked", false, "Include details and sort by rating")
	return cmd
}

func routesCmd() *cobra.Command {
	var f catalog.RouteFilter
	var typ string

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Search catalog routes",
		Example: `  hubctl routes --from CDG --type hub
  hubctl routes --hub DXB --min-savings 250`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load(cmd.Context())
			if err != nil {
				return err
			}
			f.Type = catalog.RouteType(typ)
			return writeJSON(cmd.OutOrStdout(), d.engine.SearchRoutes(f))
		},
	}
	cmd.Flags().StringVar(&f.From, "from", "", "Origin airport code")
	cmd.Flags().StringVar(&f.To, "to", "", "Destination airport code")
	cmd.Flags().StringVar(&typ, "type", "", "Route type: direct or hub")
	cmd.Flags().StringVar(&f.Hub, "hub", "", "Connecting hub code")
	cmd.Flags().Float64Var(&f.MinSavings, "min-savings", 0, "Minimum absolute savings")
	return cmd
}
