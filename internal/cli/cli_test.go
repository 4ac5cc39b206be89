package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/riskibarqy/venue-insight/internal/session/intake"
	"github.com/riskibarqy/venue-insight/internal/usecase"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	err := Execute(context.Background(), args, &out, io.Discard)
	return out.String(), err
}

func TestVenuesCommand(t *testing.T) {
	t.Parallel()

	out, err := run(t, "venues", "--by-country")
	if err != nil {
		t.Fatalf("venues: %v", err)
	}
	for _, want := range []string{"Australia (3)", "England (2)", "India (4)", "South Africa (1)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestSummaryCommandJSON(t *testing.T) {
	t.Parallel()

	out, err := run(t, "--json", "summary", "wankhede")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !strings.Contains(out, `"Found": true`) || !strings.Contains(out, `"InningsDifferential": 13.5`) {
		t.Fatalf("unexpected json output:\n%s", out)
	}
}

func TestMatchesCommandRejectsUnknownOrder(t *testing.T) {
	t.Parallel()

	_, err := run(t, "matches", "wankhede", "--order", "score")
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("unexpected error: got=%v want=%v", err, usecase.ErrInvalidInput)
	}
}

func TestSelectCommandKeepsLastVenue(t *testing.T) {
	t.Parallel()

	out, err := run(t, "select", "mcg", "eden-gardens", "--delay", "5ms")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if !strings.Contains(out, "Selection: ready  |  Venue: eden-gardens") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "Andre Russell") {
		t.Fatalf("expected eden gardens charts in output:\n%s", out)
	}
}

func TestSelectCommandRejectsBlankVenue(t *testing.T) {
	t.Parallel()

	_, err := run(t, "select", "  ", "--delay", "5ms")
	if err == nil || !strings.Contains(err.Error(), "select") {
		t.Fatalf("expected select error, got %v", err)
	}
}

func TestIntakeCommand(t *testing.T) {
	t.Parallel()

	t.Run("upload", func(t *testing.T) {
		out, err := run(t, "intake", "--name", "mcg.csv", "--size", "2048", "--upload", "--upload-delay", "5ms")
		if err != nil {
			t.Fatalf("intake: %v", err)
		}
		if !strings.Contains(out, "Intake: uploaded") || !strings.Contains(out, "mcg.csv has been uploaded.") {
			t.Fatalf("unexpected output:\n%s", out)
		}
	})

	t.Run("rejects non csv", func(t *testing.T) {
		out, err := run(t, "intake", "--name", "notes.txt", "--type", "text/plain", "--size", "10")
		if !errors.Is(err, intake.ErrInvalidFileType) {
			t.Fatalf("unexpected error: got=%v want=%v", err, intake.ErrInvalidFileType)
		}
		if !strings.Contains(out, "Please upload a CSV file.") {
			t.Fatalf("expected rejection notice in output:\n%s", out)
		}
	})

	t.Run("rejects oversized", func(t *testing.T) {
		_, err := run(t, "intake", "--name", "big.csv", "--size", "6000000")
		if !errors.Is(err, intake.ErrFileTooLarge) {
			t.Fatalf("unexpected error: got=%v want=%v", err, intake.ErrFileTooLarge)
		}
	})
}
