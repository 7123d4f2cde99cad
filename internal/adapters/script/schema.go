package script

import (
	"time"

	"github.com/hakel/termdemo/internal/domain"
)

const supportedVersion = 1

type fileSchema struct {
	Version int          `toml:"version"`
	Name    string       `toml:"name"`
	Steps   []stepSchema `toml:"steps"`
}

type stepSchema struct {
	Kind    string `toml:"kind"`
	Channel string `toml:"channel"`
	Text    string `toml:"text"`
	DelayMS int64  `toml:"delay_ms"`
}

func (s stepSchema) toDomain() (domain.Step, error) {
	channel := domain.Channel(s.Channel)
	if s.Channel == "" {
		channel = domain.ChannelStdout
	}

	step := domain.Step{
		Kind:       domain.StepKind(s.Kind),
		Channel:    channel,
		Text:       s.Text,
		DelayAfter: time.Duration(s.DelayMS) * time.Millisecond,
	}

	if step.Kind == domain.StepEmit && step.Text == "" {
		return domain.Step{}, errEmptyEmitText
	}

	if err := step.Validate(); err != nil {
		return domain.Step{}, err
	}

	return step, nil
}
