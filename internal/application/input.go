package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hakel/termdemo/internal/domain"
)

// InputTest runs the interactive demonstration: two prompts, a greeting,
// and a doubled number. A non-numeric entry is reported and the run
// continues; only an interrupt is fatal.
type InputTest struct {
	runner *Runner
}

func NewInputTest(runner *Runner) *InputTest {
	return &InputTest{runner: runner}
}

func (t *InputTest) Run(ctx context.Context) error {
	r := t.runner

	r.Emit("Simple Input Test")
	r.Emit("================")
	r.Emit("")

	name, err := r.Prompt(ctx, "Enter your name: ")
	if err != nil {
		return t.reportReadFailure(err)
	}
	r.Emit(fmt.Sprintf("Hello, %s!", strings.TrimSpace(name)))
	r.Emit("")

	entry, err := r.Prompt(ctx, "Enter a number: ")
	if err != nil {
		return t.reportReadFailure(err)
	}

	if number, parseErr := ParseNumber(entry); parseErr != nil {
		r.Emit("That wasn't a valid number!")
	} else {
		r.Emit(fmt.Sprintf("Your number doubled is: %d", number*2))
	}

	r.Emit("")
	r.Emit("Test completed!")
	return nil
}

// reportReadFailure keeps a closed input stream benign (the session just
// ends, status zero) and lets interrupts surface.
func (t *InputTest) reportReadFailure(err error) error {
	if domain.KindOf(err).Fatal() {
		return err
	}

	t.runner.EmitErr("⚠️  Input ended before the test completed")
	return nil
}

// ParseNumber parses one line of user input as an integer, classifying a
// failure as invalid input rather than letting the strconv error escape.
func ParseNumber(entry string) (int, error) {
	number, err := strconv.Atoi(strings.TrimSpace(entry))
	if err != nil {
		return 0, domain.NewStepError(domain.FailureInvalidInput, errors.Join(domain.ErrNotANumber, err))
	}
	return number, nil
}
