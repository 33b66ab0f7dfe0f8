package completion

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAnchorNotFound means the generated script no longer contains a block
	// this package patches.
	ErrAnchorNotFound = errors.New("anchor not found")
	// ErrTerminatorNotFound means a patched block was found but its end was not.
	ErrTerminatorNotFound = errors.New("terminator not found")
)

// AnchorSpec describes one block replacement: the block starts at the first
// occurrence of Start and ends after the first Terminator that follows it.
type AnchorSpec struct {
	Label       string
	Start       string
	Terminator  string
	Replacement string
}

// ReplaceBlock replaces the span from the start of spec.Start through the end of
// spec.Terminator with spec.Replacement.
func ReplaceBlock(script string, spec AnchorSpec) (string, error) {
	start := strings.Index(script, spec.Start)
	if start < 0 {
		return "", fmt.Errorf("%w: block %q (pattern %q)", ErrAnchorNotFound, spec.Label, spec.Start)
	}
	offset := strings.Index(script[start:], spec.Terminator)
	if offset < 0 {
		return "", fmt.Errorf("%w: block %q (pattern %q)", ErrTerminatorNotFound, spec.Label, spec.Terminator)
	}
	end := start + offset + len(spec.Terminator)
	return script[:start] + spec.Replacement + script[end:], nil
}

// ReplaceMarker replaces the first occurrence of marker. It reports false, and
// returns script unchanged, when marker is absent.
func ReplaceMarker(script, marker, replacement string) (string, bool) {
	i := strings.Index(script, marker)
	if i < 0 {
		return script, false
	}
	return script[:i] + replacement + script[i+len(marker):], true
}
