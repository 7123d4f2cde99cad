package application

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hakel/termdemo/internal/domain"
)

const (
	demoLongPause = time.Second
	demoWorkPause = 800 * time.Millisecond
	demoWorkSteps = 5
	demoRollCeil  = 100
	missingFile   = "nonexistent.txt"
)

// Demo is the output demonstration: a fixed linear sequence of stdout and
// stderr lines with pauses, shaped so a hosting terminal can show the
// two channels side by side. It always completes with status zero; the
// one file error it provokes is caught and reported as expected.
type Demo struct {
	runner *Runner
	roll   func(n int) int
	open   func(name string) error
}

type DemoOption func(*Demo)

// WithRoll replaces the uniform [1,n] roll, which is otherwise seeded
// from process entropy and not reproducible.
func WithRoll(roll func(n int) int) DemoOption {
	return func(d *Demo) {
		if roll != nil {
			d.roll = roll
		}
	}
}

// WithOpenFile replaces the file-open probe used for the expected-failure
// demonstration.
func WithOpenFile(open func(name string) error) DemoOption {
	return func(d *Demo) {
		if open != nil {
			d.open = open
		}
	}
}

func NewDemo(runner *Runner, opts ...DemoOption) *Demo {
	d := &Demo{
		runner: runner,
		roll: func(n int) int {
			return rand.IntN(n) + 1
		},
		open: func(name string) error {
			f, err := os.Open(name)
			if err != nil {
				return err
			}
			return f.Close()
		},
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Run walks the fixed sequence. The only returned errors are interrupts
// of a pause; the provoked file error never escapes.
func (d *Demo) Run(ctx context.Context) error {
	r := d.runner

	r.Emit("🚀 Terminal Demo Script")
	r.Emit("========================================")
	r.Emit("")

	r.Emit("✅ This is normal stdout output")
	if err := r.Pause(ctx, demoLongPause); err != nil {
		return err
	}

	r.EmitErr("⚠️  This is stderr output")
	if err := r.Pause(ctx, demoLongPause); err != nil {
		return err
	}

	r.Emit("")
	r.Emit("📊 Simulating some work...")
	for i := 1; i <= demoWorkSteps; i++ {
		r.Emit(fmt.Sprintf("   Processing step %d/%d...", i, demoWorkSteps))
		if err := r.Pause(ctx, demoWorkPause); err != nil {
			return err
		}
	}

	r.Emit("")
	r.Emit(fmt.Sprintf("🎲 Random number: %d", d.roll(demoRollCeil)))

	r.Emit("")
	r.Emit("📁 Attempting to read a file...")
	if err := d.open(missingFile); err != nil {
		// Expected: the file is guaranteed not to exist. Report on the
		// error channel and keep going.
		r.logger.Debug("file probe failed", "err", domain.NewStepError(domain.FailureBenign, err))
		r.EmitErr("❌ File not found (this is expected!)")
	}

	r.Emit("")
	r.Emit("🧮 Some calculations:")
	r.Emit(fmt.Sprintf("   • 2 + 2 = %d", 2+2))
	r.Emit(fmt.Sprintf("   • 10 ^ 3 = %d", 1000))
	r.Emit(fmt.Sprintf("   • π ≈ %.5f", 3.14159))

	r.Emit("")
	r.Emit("🎉 Demo completed successfully!")
	r.Emit("   Check out both stdout (white) and stderr (red) messages!")
	return nil
}
