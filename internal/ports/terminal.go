package ports

import "context"

// Terminal is the pair of output channels plus the interactive input
// stream that a runner owns exclusively for its process lifetime.
type Terminal interface {
	// Print writes one line to the standard-output channel.
	Print(line string)
	// PrintErr writes one line to the standard-error channel.
	PrintErr(line string)
	// Prompt writes text to standard output without a trailing newline,
	// flushed so it is visible before the caller blocks on ReadLine.
	Prompt(text string)
	// ReadLine blocks until one line of input is available or the input
	// stream ends.
	ReadLine(ctx context.Context) (string, error)
}
