// Package cli implements venuectl, a terminal client over the seeded venue
// dataset and the session controllers.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/riskibarqy/venue-insight/internal/app"
	"github.com/riskibarqy/venue-insight/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/venue-insight/internal/platform/cache"
	"github.com/riskibarqy/venue-insight/internal/platform/logging"
	"github.com/riskibarqy/venue-insight/internal/usecase"
	"github.com/spf13/cobra"
)

type options struct {
	verbose bool
	json    bool
}

type env struct {
	opts     *options
	out      io.Writer
	logger   *logging.Logger
	venues   *usecase.VenueService
	insights *usecase.InsightService
}

func newEnv(opts *options, out, errOut io.Writer) (*env, error) {
	level := logging.LevelWarn
	if opts.verbose {
		level = logging.LevelDebug
	}
	logger := logging.NewConsole(errOut, level)

	dataset := memory.SeedDataset()
	if err := dataset.Validate(); err != nil {
		return nil, err
	}
	repos := app.NewRepositories(dataset, nil)

	return &env{
		opts:   opts,
		out:    out,
		logger: logger,
		venues: usecase.NewVenueService(repos.Venues),
		insights: usecase.NewInsightService(
			repos.Summaries,
			repos.Matches,
			repos.TeamPerformance,
			repos.PlayerPerformance,
			cache.NewStore(time.Hour),
			usecase.InsightServiceConfig{DatasetVersion: dataset.Version},
			logger,
			nil,
		),
	}, nil
}

// NewRootCommand builds the venuectl command tree writing to out. Logs go to
// stderr so they never mix with rendered output.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	opts := &options{}
	var e *env

	root := &cobra.Command{
		Use:           "venuectl",
		Short:         "Cricket venue analytics",
		Long:          "Inspect venue summaries, recent matches and performance charts, and drive the venue selection and CSV intake flows.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			built, err := newEnv(opts, out, errOut)
			if err != nil {
				return err
			}
			e = built
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log controller transitions to stderr")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "print results as JSON")

	current := func() *env { return e }
	root.AddCommand(
		newVenuesCmd(current),
		newSummaryCmd(current),
		newMatchesCmd(current),
		newTeamsCmd(current),
		newPlayersCmd(current),
		newChartsCmd(current),
		newSelectCmd(current),
		newIntakeCmd(current),
	)
	return root
}

// Execute runs the CLI with ctx bound to every command.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) error {
	root := NewRootCommand(out, errOut)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
