package cli

import (
	"github.com/riskibarqy/venue-insight/internal/report"
	"github.com/riskibarqy/venue-insight/internal/usecase"
	"github.com/spf13/cobra"
)

func newVenuesCmd(current func() *env) *cobra.Command {
	var byCountry bool

	cmd := &cobra.Command{
		Use:   "venues",
		Short: "List venues grouped by country",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := current()
			if byCountry {
				groups, err := e.venues.ListVenuesByCountry(cmd.Context())
				if err != nil {
					return err
				}
				if e.opts.json {
					return report.JSON(e.out, groups)
				}
				report.PrintCountryGroups(e.out, groups)
				return nil
			}

			items, err := e.venues.ListVenues(cmd.Context())
			if err != nil {
				return err
			}
			if e.opts.json {
				return report.JSON(e.out, items)
			}
			report.PrintVenues(e.out, items)
			return nil
		},
	}
	cmd.Flags().BoolVar(&byCountry, "by-country", false, "print one section per country")
	return cmd
}

func newSummaryCmd(current func() *env) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <venue-id>",
		Short: "Show the venue summary, falling back to defaults",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := current()
			res, err := e.insights.GetVenueSummary(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if e.opts.json {
				return report.JSON(e.out, res)
			}
			report.PrintSummary(e.out, res)
			return nil
		},
	}
}

func newMatchesCmd(current func() *env) *cobra.Command {
	var order string

	cmd := &cobra.Command{
		Use:   "matches <venue-id>",
		Short: "List recent matches at a venue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := current()
			parsed, err := usecase.ParseMatchOrder(order)
			if err != nil {
				return err
			}
			res, err := e.insights.GetMatches(cmd.Context(), args[0], parsed)
			if err != nil {
				return err
			}
			if e.opts.json {
				return report.JSON(e.out, res)
			}
			report.PrintMatches(e.out, res)
			return nil
		},
	}
	cmd.Flags().StringVar(&order, "order", string(usecase.MatchOrderStored), "stored or date (newest first)")
	return cmd
}

func newTeamsCmd(current func() *env) *cobra.Command {
	return &cobra.Command{
		Use:   "teams <venue-id>",
		Short: "Show team performance at a venue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := current()
			res, err := e.insights.GetTeamPerformance(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if e.opts.json {
				return report.JSON(e.out, res)
			}
			report.PrintTeams(e.out, res)
			return nil
		},
	}
}

func newPlayersCmd(current func() *env) *cobra.Command {
	return &cobra.Command{
		Use:   "players <venue-id>",
		Short: "Show player performance at a venue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := current()
			res, err := e.insights.GetPlayerPerformance(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if e.opts.json {
				return report.JSON(e.out, res)
			}
			report.PrintPlayers(e.out, res)
			return nil
		},
	}
}

func newChartsCmd(current func() *env) *cobra.Command {
	return &cobra.Command{
		Use:   "charts <venue-id>",
		Short: "Show win rates, match share and top performers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := current()
			res, err := e.insights.GetCharts(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if e.opts.json {
				return report.JSON(e.out, res)
			}
			report.PrintCharts(e.out, res)
			return nil
		},
	}
}
