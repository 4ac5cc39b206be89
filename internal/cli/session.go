package cli

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/venue-insight/internal/platform/scheduler"
	"github.com/riskibarqy/venue-insight/internal/report"
	"github.com/riskibarqy/venue-insight/internal/session/intake"
	"github.com/riskibarqy/venue-insight/internal/session/selection"
	"github.com/sourcegraph/conc"
	"github.com/spf13/cobra"
)

// runController starts run in the background and returns a stop function
// that cancels it and waits for it to exit.
func runController(ctx context.Context, run func(context.Context) error) func() {
	runCtx, cancel := context.WithCancel(ctx)
	var wg conc.WaitGroup
	wg.Go(func() { _ = run(runCtx) })
	return func() {
		cancel()
		wg.Wait()
	}
}

func newSelectCmd(current func() *env) *cobra.Command {
	var (
		delay time.Duration
		gap   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "select <venue-id>...",
		Short: "Select venues in turn and print the insights of the last one",
		Long:  "Each selection supersedes the previous one. Only the last venue becomes ready; earlier loads are cancelled.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := current()
			ctx := cmd.Context()

			ctrl := selection.NewController(e.insights, scheduler.NewReal(), selection.Config{LoadDelay: delay}, e.logger, nil)
			stop := runController(ctx, ctrl.Run)
			defer stop()

			updates, unsubscribe, err := ctrl.Subscribe(ctx)
			if err != nil {
				return err
			}
			defer unsubscribe()

			for i, id := range args {
				if i > 0 && gap > 0 {
					time.Sleep(gap)
				}
				if _, err := ctrl.SelectVenue(ctx, id); err != nil {
					return errors.Wrapf(err, "select %q", id)
				}
			}

			waitCtx, cancel := context.WithTimeout(ctx, delay+selection.DefaultLoadTimeout)
			defer cancel()
			final, err := awaitSelection(waitCtx, updates, strings.TrimSpace(args[len(args)-1]))
			if err != nil {
				return err
			}

			if e.opts.json {
				if err := report.JSON(e.out, final); err != nil {
					return err
				}
			} else {
				report.PrintSelection(e.out, final)
			}
			if final.Phase == selection.PhaseFailed {
				return errors.Newf("load %s failed: %s", final.VenueID, final.Reason)
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&delay, "delay", selection.DefaultLoadDelay, "delay before the selected venue loads")
	cmd.Flags().DurationVar(&gap, "gap", 0, "pause between successive selections")
	return cmd
}

func awaitSelection(ctx context.Context, updates <-chan selection.State, venueID string) (selection.State, error) {
	for {
		select {
		case <-ctx.Done():
			return selection.State{}, errors.Wrapf(ctx.Err(), "wait for %s", venueID)
		case s, ok := <-updates:
			if !ok {
				return selection.State{}, selection.ErrControllerStopped
			}
			if s.VenueID != venueID {
				continue
			}
			if s.Phase == selection.PhaseReady || s.Phase == selection.PhaseFailed {
				return s, nil
			}
		}
	}
}

func newIntakeCmd(current func() *env) *cobra.Command {
	var (
		candidate   intake.Candidate
		upload      bool
		uploadDelay time.Duration
		maxBytes    int64
	)

	cmd := &cobra.Command{
		Use:   "intake",
		Short: "Validate a candidate CSV file and optionally simulate its upload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := current()
			ctx := cmd.Context()

			ctrl := intake.NewController(scheduler.NewReal(), intake.Config{
				UploadDelay: uploadDelay,
				MaxBytes:    maxBytes,
			}, e.logger, nil)
			stop := runController(ctx, ctrl.Run)
			defer stop()

			state, err := ctrl.SubmitCandidateFile(ctx, candidate)
			if err != nil {
				_ = e.render(state)
				return err
			}
			if !upload {
				return e.render(state)
			}

			updates, unsubscribe, err := ctrl.Subscribe(ctx)
			if err != nil {
				return err
			}
			defer unsubscribe()

			if _, err := ctrl.BeginUpload(ctx); err != nil {
				return err
			}

			waitCtx, cancel := context.WithTimeout(ctx, uploadDelay+5*time.Second)
			defer cancel()
			for {
				select {
				case <-waitCtx.Done():
					return errors.Wrap(waitCtx.Err(), "wait for upload")
				case s, ok := <-updates:
					if !ok {
						return intake.ErrControllerStopped
					}
					if s.Phase == intake.PhaseUploaded {
						return e.render(s)
					}
				}
			}
		},
	}
	cmd.Flags().StringVar(&candidate.Name, "name", "", "file name, e.g. wankhede.csv")
	cmd.Flags().StringVar(&candidate.DeclaredType, "type", intake.CSVMediaType, "declared media type")
	cmd.Flags().Int64Var(&candidate.SizeBytes, "size", 0, "file size in bytes")
	cmd.Flags().BoolVar(&upload, "upload", false, "simulate the upload after validation")
	cmd.Flags().DurationVar(&uploadDelay, "upload-delay", intake.DefaultUploadDelay, "simulated upload duration")
	cmd.Flags().Int64Var(&maxBytes, "max-bytes", intake.DefaultMaxBytes, "maximum accepted size in bytes")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func (e *env) render(s intake.State) error {
	if e.opts.json {
		return report.JSON(e.out, s)
	}
	report.PrintIntake(e.out, s)
	return nil
}
