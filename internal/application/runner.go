package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hakel/termdemo/internal/domain"
	"github.com/hakel/termdemo/internal/logging"
	"github.com/hakel/termdemo/internal/ports"
)

// Runner executes scripted sequences strictly in order: emit a line,
// pause, or read a line. It is the single execution abstraction shared by
// every demo entry point. All delays are multiplied by the pacing scale,
// which lets the harness (and tests) speed a run up or down without
// touching the scripts themselves.
type Runner struct {
	term   ports.Terminal
	sleep  ports.Sleeper
	clock  ports.Clock
	scale  float64
	logger *slog.Logger
}

type RunnerOption func(*Runner)

func WithPacingScale(scale float64) RunnerOption {
	return func(r *Runner) {
		if scale >= 0 {
			r.scale = scale
		}
	}
}

func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func NewRunner(term ports.Terminal, sleep ports.Sleeper, clock ports.Clock, opts ...RunnerOption) *Runner {
	if sleep == nil {
		sleep = ports.SystemSleeper{}
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	r := &Runner{
		term:   term,
		sleep:  sleep,
		clock:  clock,
		scale:  1.0,
		logger: logging.NewNop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Execute runs every step of the session front to back. The first fatal
// step error stops execution; read steps consume and discard their line.
func (r *Runner) Execute(ctx context.Context, session domain.Session) error {
	start := r.clock.Now()

	for i, step := range session.Steps {
		if err := r.runStep(ctx, step); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}

	r.logger.Debug("session complete",
		"session", session.Name,
		"steps", len(session.Steps),
		"elapsed", r.clock.Now().Sub(start))
	return nil
}

func (r *Runner) runStep(ctx context.Context, step domain.Step) error {
	if err := step.Validate(); err != nil {
		return err
	}

	switch step.Kind {
	case domain.StepEmit:
		if step.Channel == domain.ChannelStderr {
			r.EmitErr(step.Text)
		} else {
			r.Emit(step.Text)
		}
	case domain.StepRead:
		if _, err := r.Prompt(ctx, step.Text); err != nil {
			return err
		}
	case domain.StepPause:
	}

	return r.Pause(ctx, step.DelayAfter)
}

// Emit writes one line to standard output.
func (r *Runner) Emit(line string) {
	r.term.Print(line)
}

// EmitErr writes one line to standard error.
func (r *Runner) EmitErr(line string) {
	r.term.PrintErr(line)
}

// Pause sleeps for d scaled by the pacing factor, or until ctx is
// cancelled. A cancellation is classified as an interrupt.
func (r *Runner) Pause(ctx context.Context, d time.Duration) error {
	scaled := time.Duration(float64(d) * r.scale)
	if err := r.sleep.Sleep(ctx, scaled); err != nil {
		return domain.NewStepError(domain.FailureInterrupted, err)
	}
	return nil
}

// Prompt writes the prompt text without a trailing newline and blocks on
// one line of input.
func (r *Runner) Prompt(ctx context.Context, prompt string) (string, error) {
	r.term.Prompt(prompt)

	line, err := r.term.ReadLine(ctx)
	if err != nil {
		kind := domain.FailureBenign
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			kind = domain.FailureInterrupted
		}
		return "", domain.NewStepError(kind, err)
	}
	return line, nil
}
