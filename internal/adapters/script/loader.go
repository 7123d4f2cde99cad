// Package script loads user-authored step sequences from TOML files.
package script

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/hakel/termdemo/internal/domain"
)

var (
	errEmptyEmitText      = errors.New("emit step has no text")
	ErrUnsupportedVersion = errors.New("unsupported script version")
	ErrNoSteps            = errors.New("script defines no steps")
)

// Load parses and validates a script file. No step of an invalid file is
// ever executed: validation covers the whole sequence before a session
// is returned.
func Load(path string) (domain.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Session{}, fmt.Errorf("read script file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.Session{}, fmt.Errorf("parse script file: %w", err)
	}

	if file.Version != supportedVersion {
		return domain.Session{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, file.Version)
	}

	if len(file.Steps) == 0 {
		return domain.Session{}, ErrNoSteps
	}

	steps := make([]domain.Step, 0, len(file.Steps))
	for i, raw := range file.Steps {
		step, err := raw.toDomain()
		if err != nil {
			return domain.Session{}, fmt.Errorf("step %d: %w", i, err)
		}
		steps = append(steps, step)
	}

	name := file.Name
	if name == "" {
		name = filepath.Base(path)
	}

	return domain.NewSession(name, steps...), nil
}
