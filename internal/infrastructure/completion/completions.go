// Package completion produces shell completion scripts whose profile
// arguments are completed dynamically.
//
// The static generator renders a script listing the grammar's flags and
// subcommands. An Augmenter then patches known blocks of that script and
// appends helper functions that run "<program> list" from inside the user's
// shell at completion time. This package only emits that source; it never runs
// the listing itself.
package completion

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/syntax"

	"github.com/tftio/prompter/internal/domain"
	"github.com/tftio/prompter/internal/infrastructure/completion/static"
	"github.com/tftio/prompter/internal/pkg/logger"
	"github.com/tftio/prompter/internal/ports"
)

var (
	// ErrInvalidScript means the generator produced bytes that are not text.
	ErrInvalidScript = errors.New("generated completion script is not valid UTF-8")
	// ErrBrokenScript means the augmented bash script no longer parses.
	ErrBrokenScript = errors.New("augmented completion script does not parse")
)

// Generator builds completion scripts for a command tree.
type Generator struct {
	Root   *cobra.Command
	Logger ports.Logger
}

// NewGenerator builds a Generator for root.
func NewGenerator(root *cobra.Command, log ports.Logger) *Generator {
	if log == nil {
		log = logger.NewNop()
	}
	return &Generator{Root: root, Logger: log}
}

// Generate writes the activation banner followed by the augmented script.
// Nothing is written when building the script fails.
func (g *Generator) Generate(w io.Writer, shell domain.Shell) error {
	req := g.request(shell)
	script, err := g.script(req)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, RenderInstructions(req.Shell, req.Program)); err != nil {
		return fmt.Errorf("write completion instructions: %w", err)
	}
	if _, err := io.WriteString(w, script); err != nil {
		return fmt.Errorf("write completion script: %w", err)
	}
	return nil
}

// Script returns the banner and augmented script as one buffer.
func (g *Generator) Script(shell domain.Shell) ([]byte, error) {
	var buf bytes.Buffer
	if err := g.Generate(&buf, shell); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) request(shell domain.Shell) domain.CompletionRequest {
	return domain.CompletionRequest{Shell: shell, Program: g.Root.Name()}
}

func (g *Generator) script(req domain.CompletionRequest) (string, error) {
	var raw bytes.Buffer
	if err := static.Generate(&raw, req.Shell, g.Root, req.Program); err != nil {
		return "", fmt.Errorf("generate %s completions: %w", req.Shell, err)
	}
	if !utf8.Valid(raw.Bytes()) {
		return "", fmt.Errorf("%w (%s)", ErrInvalidScript, req.Shell)
	}

	augmenter := &Augmenter{Logger: g.Logger}
	script, err := augmenter.Augment(req.Shell, raw.String(), req.Program)
	if err != nil {
		g.Logger.Error("completion augmentation failed", err, map[string]interface{}{"shell": string(req.Shell)})
		return "", fmt.Errorf("augment %s completions: %w", req.Shell, err)
	}
	g.Logger.Debug("generated completion script", map[string]interface{}{
		"shell":     string(req.Shell),
		"program":   req.Program,
		"augmented": Supports(req.Shell),
		"bytes":     len(script),
	})

	if req.Shell == domain.ShellBash {
		if err := checkBash(script, req.Program); err != nil {
			return "", err
		}
	}
	return script, nil
}

// checkBash re-parses the augmented script so a malformed patch fails here
// rather than in the user's shell.
func checkBash(script, program string) error {
	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	if _, err := parser.Parse(strings.NewReader(script), program+".bash"); err != nil {
		return fmt.Errorf("%w: %v", ErrBrokenScript, err)
	}
	return nil
}
