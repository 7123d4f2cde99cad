package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hakel/termdemo/internal/domain"
)

// DefaultTermCount is the fixed stream length of the Fibonacci demo.
const DefaultTermCount = 15

const fibStreamPause = 300 * time.Millisecond

// FibReport summarizes one full pass over the sequence.
type FibReport struct {
	Count  int
	Max    uint64
	Sum    uint64
	Approx float64
	Golden float64
}

// HasRatio reports whether enough terms exist for the consecutive-term
// golden ratio approximation.
func (rep FibReport) HasRatio() bool {
	return rep.Count > 2
}

// Fib streams the first N Fibonacci terms with a short pause after each,
// then regenerates the sequence from scratch to report statistics. The
// regeneration is deliberate: the lazy producer is one-shot, and starting
// fresh demonstrates that it is restartable.
type Fib struct {
	runner  *Runner
	banner  string
	n       int
	printer *message.Printer
}

type FibOption func(*Fib)

func WithBanner(banner string) FibOption {
	return func(f *Fib) {
		f.banner = banner
	}
}

func WithTermCount(n int) FibOption {
	return func(f *Fib) {
		if n >= 0 {
			f.n = n
		}
	}
}

func NewFib(runner *Runner, opts ...FibOption) *Fib {
	f := &Fib{
		runner:  runner,
		n:       DefaultTermCount,
		printer: message.NewPrinter(language.English),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

func (f *Fib) Run(ctx context.Context) error {
	r := f.runner

	if f.banner != "" {
		r.Emit(f.banner)
	}
	r.Emit("Starting Fibonacci sequence generation...")
	r.Emit(strings.Repeat("=", 50))

	r.Emit(fmt.Sprintf("Generating first %d Fibonacci numbers:", f.n))
	r.Emit(strings.Repeat("-", 30))

	seq := domain.NewSequence(f.n)
	for {
		term, ok := seq.Next()
		if !ok {
			break
		}

		r.Emit(f.FormatTerm(term))
		if err := r.Pause(ctx, fibStreamPause); err != nil {
			return err
		}
	}

	r.Emit(strings.Repeat("-", 30))
	r.Emit("✅ Fibonacci sequence generation complete!")

	rep := f.Report()
	r.Emit("")
	r.Emit("📊 Statistics:")
	r.Emit(f.printer.Sprintf("   • Total numbers generated: %d", rep.Count))
	r.Emit(f.printer.Sprintf("   • Largest number: %d", rep.Max))
	r.Emit(f.printer.Sprintf("   • Sum of all numbers: %d", rep.Sum))

	if rep.HasRatio() {
		r.Emit(fmt.Sprintf("   • Golden ratio approximation: %.6f", rep.Approx))
		r.Emit(fmt.Sprintf("   • Actual golden ratio: %.6f", rep.Golden))
	}

	r.Emit("")
	r.Emit("🎉 Mission accomplished! The numbers are beautiful, aren't they?")
	return nil
}

// FormatTerm renders one term with the index zero-padded to two digits
// and the value right-aligned in an eight-column field with thousands
// separators.
func (f *Fib) FormatTerm(term domain.Term) string {
	value := f.printer.Sprintf("%d", term.Value)
	return fmt.Sprintf("F(%02d) = %8s", term.Index, value)
}

// Report recomputes the full sequence from a fresh generator and
// aggregates count, maximum, sum, and the golden ratio approximation.
func (f *Fib) Report() FibReport {
	terms := domain.Terms(f.n)

	rep := FibReport{
		Count:  len(terms),
		Golden: domain.GoldenRatio(),
	}

	for _, term := range terms {
		rep.Sum += term.Value
		if term.Value > rep.Max {
			rep.Max = term.Value
		}
	}

	if rep.HasRatio() {
		last := terms[len(terms)-1].Value
		prev := terms[len(terms)-2].Value
		rep.Approx = float64(last) / float64(prev)
	}

	return rep
}
