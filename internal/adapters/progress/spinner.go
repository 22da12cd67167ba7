package progress

import (
	"context"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/regforge/internal/usecase"
)

// SpinnerSink reports progress with a terminal spinner
type SpinnerSink struct {
	spinner *spinner.Spinner
}

// NewSpinnerSink creates a new spinner-based progress sink
func NewSpinnerSink() *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.HideCursor = false
	return &SpinnerSink{spinner: s}
}

// OnProgress handles progress events
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Spinner {
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		r.spinner.Suffix = " " + event.Message
		return
	}

	if event.Stage == "complete" {
		if r.spinner.Active() {
			r.spinner.Stop()
		}
		return
	}

	if r.spinner.Active() {
		r.spinner.Suffix = " " + event.Message
	}
}

// Info prints an info message without tearing the spinner line
func (r *SpinnerSink) Info(message string) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	color.New(color.FgCyan).Println(message)

	if wasActive {
		r.spinner.Start()
	}
}

// Error prints an error message without tearing the spinner line
func (r *SpinnerSink) Error(message string) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	color.New(color.FgRed).Println(message)

	if wasActive {
		r.spinner.Start()
	}
}

// Stop halts the spinner if it is still running
func (r *SpinnerSink) Stop() {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Ensure SpinnerSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
