// Package library resolves profiles into their library files and renders them.
package library

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/tftio/prompter/internal/domain"
	"github.com/tftio/prompter/internal/ports"
)

// Service lists, validates and renders profiles from the configured library.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Files          ports.FileReader
	Logger         ports.Logger
}

// List returns all profile names in sorted order.
func (s *Service) List(ctx context.Context) ([]string, error) {
	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return nil, err
	}
	return profileNames(cfg), nil
}

// Tree returns the dependency tree of every profile.
func (s *Service) Tree(ctx context.Context) ([]domain.TreeNode, error) {
	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return nil, err
	}
	names := profileNames(cfg)
	nodes := make([]domain.TreeNode, 0, len(names))
	for _, name := range names {
		nodes = append(nodes, s.treeNode(cfg, name, map[string]bool{}))
	}
	return nodes, nil
}

func (s *Service) treeNode(cfg domain.Config, name string, path map[string]bool) domain.TreeNode {
	node := domain.TreeNode{Name: name, Kind: domain.NodeProfile}
	profile, ok := cfg.Lookup(name)
	if !ok {
		node.Missing = true
		return node
	}
	if path[name] {
		node.Cycle = true
		return node
	}
	path[name] = true
	defer delete(path, name)

	for _, dep := range profile.DependsOn {
		if domain.IsFileDependency(dep) {
			node.Children = append(node.Children, domain.TreeNode{
				Name:    dep,
				Kind:    domain.NodeFile,
				Missing: !s.Files.Exists(filepath.Join(cfg.LibraryDir, dep)),
			})
			continue
		}
		node.Children = append(node.Children, s.treeNode(cfg, dep, path))
	}
	return node
}

// Validate resolves every profile and reports unknown references, cycles and
// missing files. All problems are joined into the returned error.
func (s *Service) Validate(ctx context.Context) error {
	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return err
	}

	var errs []error
	reported := make(map[string]bool)
	report := func(err error) {
		if !reported[err.Error()] {
			reported[err.Error()] = true
			errs = append(errs, err)
		}
	}

	for _, name := range profileNames(cfg) {
		r := newResolver(cfg)
		if err := r.visit(name); err != nil {
			report(fmt.Errorf("profile %s: %w", name, err))
			continue
		}
		for _, file := range r.files {
			if !s.Files.Exists(filepath.Join(cfg.LibraryDir, file)) {
				report(fmt.Errorf("profile %s: %w: %s", name, domain.ErrMissingFile, file))
			}
		}
	}
	return errors.Join(errs...)
}

// Render concatenates the files of the requested profiles, each file once, in
// depth-first order, framed by the pre- and post-prompts.
func (s *Service) Render(ctx context.Context, req domain.RenderRequest) (domain.RenderResult, error) {
	if len(req.Profiles) == 0 {
		return domain.RenderResult{}, domain.ErrNoProfiles
	}
	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.RenderResult{}, err
	}

	r := newResolver(cfg)
	for _, name := range req.Profiles {
		if err := r.visit(name); err != nil {
			return domain.RenderResult{}, err
		}
	}

	bodies := make([]string, 0, len(r.files))
	for _, file := range r.files {
		path := filepath.Join(cfg.LibraryDir, file)
		if !s.Files.Exists(path) {
			return domain.RenderResult{}, fmt.Errorf("%w: %s", domain.ErrMissingFile, path)
		}
		data, err := s.Files.ReadFile(path)
		if err != nil {
			return domain.RenderResult{}, fmt.Errorf("read %s: %w", path, err)
		}
		bodies = append(bodies, string(data))
	}
	s.logDebug("resolved profiles", map[string]interface{}{"profiles": req.Profiles, "files": len(r.files)})

	separator := domain.DefaultSeparator
	if req.Separator != nil {
		separator = Unescape(*req.Separator)
	}

	output := joinParts(
		prePrompt(cfg, req),
		strings.Join(bodies, separator),
		postPrompt(cfg, req),
	)
	return domain.RenderResult{
		Profiles: append([]string(nil), req.Profiles...),
		Files:    r.files,
		Output:   output,
	}, nil
}

func (s *Service) logDebug(msg string, fields map[string]interface{}) {
	if s.Logger != nil {
		s.Logger.Debug(msg, fields)
	}
}

func prePrompt(cfg domain.Config, req domain.RenderRequest) string {
	switch {
	case req.PrePrompt != nil:
		return Unescape(*req.PrePrompt)
	case cfg.HasPre:
		return cfg.PrePrompt
	default:
		return domain.DefaultPrePrompt
	}
}

func postPrompt(cfg domain.Config, req domain.RenderRequest) string {
	switch {
	case req.PostPrompt != nil:
		return Unescape(*req.PostPrompt)
	case cfg.HasPost:
		return cfg.PostPrompt
	}
	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}
	return fmt.Sprintf(domain.DefaultPostPromptFormat, now.Format(domain.DateFormat), runtime.GOARCH, runtime.GOOS)
}

// joinParts concatenates non-empty parts, starting each on a fresh line.
func joinParts(parts ...string) string {
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") && !strings.HasPrefix(part, "\n") {
			b.WriteByte('\n')
		}
		b.WriteString(part)
	}
	return b.String()
}

// Unescape interprets \n, \t, \r and \\ in user-supplied separator and prompt text.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func profileNames(cfg domain.Config) []string {
	names := make([]string, 0, len(cfg.Profiles))
	for name := range cfg.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resolver walks profile references depth-first, collecting each file once.
type resolver struct {
	cfg   domain.Config
	seen  map[string]bool
	stack []string
	files []string
}

func newResolver(cfg domain.Config) *resolver {
	return &resolver{cfg: cfg, seen: make(map[string]bool)}
}

func (r *resolver) visit(name string) error {
	profile, ok := r.cfg.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownProfile, name)
	}
	for i, onStack := range r.stack {
		if onStack == name {
			cycle := append(append([]string(nil), r.stack[i:]...), name)
			return fmt.Errorf("%w: %s", domain.ErrProfileCycle, strings.Join(cycle, " -> "))
		}
	}

	r.stack = append(r.stack, name)
	defer func() { r.stack = r.stack[:len(r.stack)-1] }()

	for _, dep := range profile.DependsOn {
		if domain.IsFileDependency(dep) {
			if !r.seen[dep] {
				r.seen[dep] = true
				r.files = append(r.files, dep)
			}
			continue
		}
		if err := r.visit(dep); err != nil {
			return err
		}
	}
	return nil
}
