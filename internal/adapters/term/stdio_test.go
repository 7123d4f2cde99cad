package term

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hakel/termdemo/internal/domain"
)

func TestPrintTargetsTheRightChannel(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	stdio := NewStdio(out, errOut, strings.NewReader(""))

	stdio.Print("to stdout")
	stdio.PrintErr("to stderr")

	assert.Equal(t, "to stdout\n", out.String())
	assert.Equal(t, "to stderr\n", errOut.String())
}

func TestPromptHasNoTrailingNewline(t *testing.T) {
	out := &bytes.Buffer{}
	stdio := NewStdio(out, &bytes.Buffer{}, strings.NewReader(""))

	stdio.Prompt("Enter your name: ")
	assert.Equal(t, "Enter your name: ", out.String())
}

func TestReadLineTrimsLineEndings(t *testing.T) {
	stdio := NewStdio(&bytes.Buffer{}, &bytes.Buffer{}, strings.NewReader("Ada\r\n21\n"))

	line, err := stdio.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ada", line)

	line, err = stdio.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "21", line)
}

func TestReadLineYieldsFinalUnterminatedLine(t *testing.T) {
	stdio := NewStdio(&bytes.Buffer{}, &bytes.Buffer{}, strings.NewReader("no newline"))

	line, err := stdio.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "no newline", line)

	_, err = stdio.ReadLine(context.Background())
	assert.ErrorIs(t, err, domain.ErrInputClosed)
}

func TestReadLineOnClosedInput(t *testing.T) {
	stdio := NewStdio(&bytes.Buffer{}, &bytes.Buffer{}, strings.NewReader(""))

	_, err := stdio.ReadLine(context.Background())
	assert.ErrorIs(t, err, domain.ErrInputClosed)
}

func TestReadLineHonorsCancelledContext(t *testing.T) {
	stdio := NewStdio(&bytes.Buffer{}, &bytes.Buffer{}, strings.NewReader("pending\n"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stdio.ReadLine(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFibBannerUsesBoxDrawing(t *testing.T) {
	banner := FibBanner()
	assert.Contains(t, banner, "FIBONACCI GENERATOR")
	assert.Contains(t, banner, "sequences since 1202!")
	assert.Contains(t, banner, "╔")
	assert.Contains(t, banner, "╝")
}
