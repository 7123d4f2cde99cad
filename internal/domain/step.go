package domain

import "time"

// Channel selects which output stream an emit step writes to. The hosting
// terminal is expected to render the two streams distinctly.
type Channel string

const (
	ChannelStdout Channel = "stdout"
	ChannelStderr Channel = "stderr"
)

func (c Channel) Valid() bool {
	return c == ChannelStdout || c == ChannelStderr
}

// StepKind is the kind of one atomic unit of scripted work.
type StepKind string

const (
	StepEmit  StepKind = "emit"
	StepPause StepKind = "pause"
	StepRead  StepKind = "read"
)

// Step is one ordered unit of a scripted sequence: write a line to an
// output channel, pause, or block on one line of input. Every step may
// carry a delay applied after it completes.
type Step struct {
	Kind       StepKind
	Channel    Channel
	Text       string
	DelayAfter time.Duration
}

func Emit(text string) Step {
	return Step{Kind: StepEmit, Channel: ChannelStdout, Text: text}
}

func EmitErr(text string) Step {
	return Step{Kind: StepEmit, Channel: ChannelStderr, Text: text}
}

func Pause(d time.Duration) Step {
	return Step{Kind: StepPause, DelayAfter: d}
}

// Read prompts on stdout without a trailing newline and consumes one
// line of input.
func Read(prompt string) Step {
	return Step{Kind: StepRead, Text: prompt}
}

// After returns a copy of the step with the given delay applied once the
// step itself has completed.
func (s Step) After(d time.Duration) Step {
	s.DelayAfter = d
	return s
}

func (s Step) Validate() error {
	switch s.Kind {
	case StepEmit:
		if !s.Channel.Valid() {
			return ErrUnknownChannel
		}
	case StepPause, StepRead:
	default:
		return ErrUnknownStepKind
	}

	if s.DelayAfter < 0 {
		return ErrNegativeDelay
	}

	return nil
}

// Session is the ordered step list for one run. It is created at process
// start, executed front to back exactly once, and never persisted.
type Session struct {
	Name  string
	Steps []Step
}

func NewSession(name string, steps ...Step) Session {
	return Session{Name: name, Steps: steps}
}
