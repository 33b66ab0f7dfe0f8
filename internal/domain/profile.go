package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrUnknownProfile is returned when a profile name is not defined.
	ErrUnknownProfile = errors.New("unknown profile")
	// ErrProfileCycle is returned when profile references loop back on themselves.
	ErrProfileCycle = errors.New("profile cycle detected")
	// ErrMissingFile is returned when a referenced library file does not exist.
	ErrMissingFile = errors.New("missing library file")
	// ErrNoProfiles is returned when a render request names no profiles.
	ErrNoProfiles = errors.New("no profiles requested")
)

// IsFileDependency reports whether a depends_on entry names a library file.
func IsFileDependency(dep string) bool {
	return strings.HasSuffix(dep, FileSuffix)
}

// RenderRequest describes one `run` invocation.
type RenderRequest struct {
	Profiles   []string
	Separator  *string
	PrePrompt  *string
	PostPrompt *string
	Now        time.Time
}

// RenderResult holds the rendered document and the files that went into it.
type RenderResult struct {
	Profiles []string `json:"profiles" yaml:"profiles"`
	Files    []string `json:"files" yaml:"files"`
	Output   string   `json:"output" yaml:"output"`
}

// NodeKind distinguishes tree entries.
type NodeKind string

const (
	NodeProfile NodeKind = "profile"
	NodeFile    NodeKind = "file"
)

// TreeNode is one entry of a profile dependency tree.
type TreeNode struct {
	Name     string     `json:"name" yaml:"name"`
	Kind     NodeKind   `json:"kind" yaml:"kind"`
	Missing  bool       `json:"missing,omitempty" yaml:"missing,omitempty"`
	Cycle    bool       `json:"cycle,omitempty" yaml:"cycle,omitempty"`
	Children []TreeNode `json:"children,omitempty" yaml:"children,omitempty"`
}
