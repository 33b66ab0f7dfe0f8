package completion

import (
	"strings"

	"github.com/tftio/prompter/internal/domain"
	"github.com/tftio/prompter/internal/infrastructure/completion/static"
	"github.com/tftio/prompter/internal/pkg/logger"
	"github.com/tftio/prompter/internal/ports"
)

// Augmenter rewrites generated completion scripts so profile names are
// completed by running "<program> list" when the user presses tab.
type Augmenter struct {
	Logger ports.Logger
}

type augmentFunc func(*Augmenter, string, string) (string, error)

// augmenters holds the shells with dynamic profile completion. Shells missing
// from the table are emitted as generated.
var augmenters = map[domain.Shell]augmentFunc{
	domain.ShellBash: (*Augmenter).bash,
	domain.ShellZsh:  (*Augmenter).zsh,
	domain.ShellFish: (*Augmenter).fish,
}

// Augment applies the augmentation for shell exactly once. Running it on an
// already augmented script is not supported.
func (a *Augmenter) Augment(shell domain.Shell, script, program string) (string, error) {
	fn, ok := augmenters[shell]
	if !ok {
		return script, nil
	}
	return fn(a, script, program)
}

// Supports reports whether shell gets dynamic profile completion.
func Supports(shell domain.Shell) bool {
	_, ok := augmenters[shell]
	return ok
}

func (a *Augmenter) logger() ports.Logger {
	if a == nil || a.Logger == nil {
		return logger.NewNop()
	}
	return a.Logger
}

// expand fills {{bin}} with the program name and {{id}} with its identifier form.
func expand(tmpl, program string) string {
	return strings.NewReplacer("{{bin}}", program, "{{id}}", static.Identifier(program)).Replace(tmpl)
}
