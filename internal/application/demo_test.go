package application

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoCompletesAndSplitsChannels(t *testing.T) {
	term := &fakeTerminal{}
	sleeper := &recordingSleeper{}
	demo := NewDemo(newTestRunner(term, sleeper))

	require.NoError(t, demo.Run(context.Background()))

	stdout := strings.Join(term.out, "\n")
	assert.Contains(t, stdout, "This is normal stdout output")
	assert.Contains(t, stdout, "Processing step 5/5")
	assert.Contains(t, stdout, "2 + 2 = 4")
	assert.Contains(t, stdout, "Demo completed successfully!")

	stderr := strings.Join(term.errOut, "\n")
	assert.Contains(t, stderr, "This is stderr output")
	assert.Contains(t, stderr, "File not found (this is expected!)")

	// The stderr demo line and the file notice never leak to stdout.
	assert.NotContains(t, stdout, "stderr output")
	assert.NotContains(t, stdout, "File not found")
}

func TestDemoPacesTheWorkSimulation(t *testing.T) {
	sleeper := &recordingSleeper{}
	demo := NewDemo(newTestRunner(&fakeTerminal{}, sleeper))

	require.NoError(t, demo.Run(context.Background()))

	// Two long pauses around the stderr line, five work-step pauses.
	require.Len(t, sleeper.nonZero(), 7)
	assert.Equal(t, demoLongPause, sleeper.nonZero()[0])
	assert.Equal(t, demoWorkPause, sleeper.nonZero()[2])
}

func TestDemoRandomRollIsInRange(t *testing.T) {
	for range 50 {
		term := &fakeTerminal{}
		demo := NewDemo(newTestRunner(term, &recordingSleeper{}))
		require.NoError(t, demo.Run(context.Background()))

		roll := extractRoll(t, term.out)
		assert.GreaterOrEqual(t, roll, 1)
		assert.LessOrEqual(t, roll, 100)
	}
}

func TestDemoUsesInjectedRoll(t *testing.T) {
	term := &fakeTerminal{}
	demo := NewDemo(newTestRunner(term, &recordingSleeper{}), WithRoll(func(n int) int { return n }))

	require.NoError(t, demo.Run(context.Background()))
	assert.Contains(t, term.out, "🎲 Random number: 100")
}

func TestDemoSucceedsRegardlessOfFileProbeOutcome(t *testing.T) {
	missingErr := os.ErrNotExist

	tests := []struct {
		name string
		open func(string) error
	}{
		{"file missing", func(string) error { return missingErr }},
		{"file somehow present", func(string) error { return nil }},
		{"other error", func(string) error { return errors.New("permission denied") }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			term := &fakeTerminal{}
			demo := NewDemo(newTestRunner(term, &recordingSleeper{}), WithOpenFile(tc.open))
			assert.NoError(t, demo.Run(context.Background()))
		})
	}
}

func TestDemoReturnsOnInterruptedPause(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	term := &fakeTerminal{}
	demo := NewDemo(newTestRunner(term, &recordingSleeper{}))
	assert.Error(t, demo.Run(ctx))
}

func extractRoll(t *testing.T, lines []string) int {
	t.Helper()

	for _, line := range lines {
		var roll int
		if _, err := fmt.Sscanf(line, "🎲 Random number: %d", &roll); err == nil {
			return roll
		}
	}

	t.Fatal("no random number line emitted")
	return 0
}
