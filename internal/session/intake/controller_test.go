package intake

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/venue-insight/internal/platform/id"
	"github.com/riskibarqy/venue-insight/internal/platform/logging"
	"github.com/riskibarqy/venue-insight/internal/platform/scheduler"
)

var testStart = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func startController(t *testing.T) (*Controller, *scheduler.Manual) {
	t.Helper()

	clock := scheduler.NewManual(testStart)
	c := NewController(clock, Config{Now: clock.Now, IDs: id.NewSequence("receipt")}, logging.NewNop(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = c.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return c, clock
}

func waitForPhase(t *testing.T, c *Controller, phase Phase) State {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s := c.Snapshot(); s.Phase == phase {
			return s
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for phase %s, last state %+v", phase, c.Snapshot())
	return State{}
}

var validCandidate = Candidate{Name: "wankhede-2023.csv", DeclaredType: "text/csv", SizeBytes: 4096}

func TestController_FullUploadCycle(t *testing.T) {
	t.Parallel()

	c, clock := startController(t)
	ctx := context.Background()

	selected, err := c.SubmitCandidateFile(ctx, validCandidate)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if selected.Phase != PhaseSelected || selected.File.Name != validCandidate.Name {
		t.Fatalf("unexpected state after submit: %+v", selected)
	}

	uploading, err := c.BeginUpload(ctx)
	if err != nil {
		t.Fatalf("begin upload: %v", err)
	}
	if uploading.Phase != PhaseUploading {
		t.Fatalf("unexpected phase: got=%s want=%s", uploading.Phase, PhaseUploading)
	}

	clock.Advance(DefaultUploadDelay - time.Millisecond)
	if s := c.Snapshot(); s.Phase != PhaseUploading {
		t.Fatalf("upload finished early: %s", s.Phase)
	}

	clock.Advance(time.Millisecond)
	uploaded := waitForPhase(t, c, PhaseUploaded)
	if uploaded.Receipt == nil {
		t.Fatalf("expected upload receipt")
	}
	want := UploadReceipt{
		ID:          "receipt-1",
		FileName:    validCandidate.Name,
		SizeBytes:   validCandidate.SizeBytes,
		CompletedAt: testStart.Add(DefaultUploadDelay),
	}
	if *uploaded.Receipt != want {
		t.Fatalf("unexpected receipt: got=%+v want=%+v", *uploaded.Receipt, want)
	}
	if uploaded.Notice == nil || uploaded.Notice.Kind != NoticeSuccess || uploaded.Notice.Description != "wankhede-2023.csv has been uploaded." {
		t.Fatalf("unexpected success notice: %+v", uploaded.Notice)
	}

	clock.Advance(DefaultResetDelay)
	empty := waitForPhase(t, c, PhaseEmpty)
	if empty.File != nil || empty.Receipt != nil {
		t.Fatalf("expected cleared state after reset: %+v", empty)
	}
}

func TestController_RejectionKeepsPreviousState(t *testing.T) {
	t.Parallel()

	c, _ := startController(t)
	ctx := context.Background()

	t.Run("from empty", func(t *testing.T) {
		got, err := c.SubmitCandidateFile(ctx, Candidate{Name: "report.txt", DeclaredType: "text/plain", SizeBytes: 100})
		if !errors.Is(err, ErrInvalidFileType) {
			t.Fatalf("expected ErrInvalidFileType, got %v", err)
		}
		if got.Phase != PhaseEmpty || got.File != nil {
			t.Fatalf("unexpected state: %+v", got)
		}
		if got.Notice == nil || got.Notice.Title != "Invalid file format" {
			t.Fatalf("unexpected notice: %+v", got.Notice)
		}
	})

	t.Run("from selected", func(t *testing.T) {
		if _, err := c.SubmitCandidateFile(ctx, validCandidate); err != nil {
			t.Fatalf("submit: %v", err)
		}
		got, err := c.SubmitCandidateFile(ctx, Candidate{Name: "season.csv", DeclaredType: "text/csv", SizeBytes: 6 * 1024 * 1024})
		if !errors.Is(err, ErrFileTooLarge) {
			t.Fatalf("expected ErrFileTooLarge, got %v", err)
		}
		if got.Phase != PhaseSelected || got.File == nil || got.File.Name != validCandidate.Name {
			t.Fatalf("expected previous selection to survive, got %+v", got)
		}
		if got.Notice == nil || got.Notice.Title != "File too large" {
			t.Fatalf("unexpected notice: %+v", got.Notice)
		}
	})
}

func TestController_BeginUploadRequiresSelection(t *testing.T) {
	t.Parallel()

	c, _ := startController(t)

	if _, err := c.BeginUpload(context.Background()); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestController_CancelDuringUploadStopsTimer(t *testing.T) {
	t.Parallel()

	c, clock := startController(t)
	ctx := context.Background()

	if _, err := c.SubmitCandidateFile(ctx, validCandidate); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := c.BeginUpload(ctx); err != nil {
		t.Fatalf("begin upload: %v", err)
	}

	got, err := c.Cancel(ctx)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got.Phase != PhaseEmpty {
		t.Fatalf("unexpected phase after cancel: %s", got.Phase)
	}
	if clock.Pending() != 0 {
		t.Fatalf("expected upload timer to be cancelled, pending=%d", clock.Pending())
	}

	clock.Advance(DefaultUploadDelay + DefaultResetDelay)
	if s := c.Snapshot(); s.Phase != PhaseEmpty || s.Version != got.Version {
		t.Fatalf("unexpected state after cancelled upload: %+v", s)
	}
}

func TestController_CancelFromEmptyIsNoop(t *testing.T) {
	t.Parallel()

	c, _ := startController(t)
	before := c.Snapshot()

	got, err := c.Cancel(context.Background())
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got != before {
		t.Fatalf("cancel from empty changed state: before=%+v after=%+v", before, got)
	}
}

func TestController_NewSelectionCancelsPendingReset(t *testing.T) {
	t.Parallel()

	c, clock := startController(t)
	ctx := context.Background()

	if _, err := c.SubmitCandidateFile(ctx, validCandidate); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := c.BeginUpload(ctx); err != nil {
		t.Fatalf("begin upload: %v", err)
	}
	clock.Advance(DefaultUploadDelay)
	waitForPhase(t, c, PhaseUploaded)

	next := Candidate{Name: "eden-2023.csv", DeclaredType: "text/csv", SizeBytes: 512}
	if _, err := c.SubmitCandidateFile(ctx, next); err != nil {
		t.Fatalf("submit next: %v", err)
	}

	clock.Advance(DefaultResetDelay)
	s := c.Snapshot()
	if s.Phase != PhaseSelected || s.File.Name != next.Name {
		t.Fatalf("expected new selection to survive reset delay, got %+v", s)
	}
}

func TestController_StoppedController(t *testing.T) {
	t.Parallel()

	c := NewController(scheduler.NewManual(testStart), Config{}, logging.NewNop(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = c.Run(ctx)
	}()
	cancel()
	<-done

	if _, err := c.SubmitCandidateFile(context.Background(), validCandidate); !errors.Is(err, ErrControllerStopped) {
		t.Fatalf("expected ErrControllerStopped, got %v", err)
	}
	if _, err := c.Cancel(context.Background()); !errors.Is(err, ErrControllerStopped) {
		t.Fatalf("expected ErrControllerStopped from cancel, got %v", err)
	}
}
