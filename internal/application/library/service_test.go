package library

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tftio/prompter/internal/domain"
)

type stubConfigProvider struct {
	cfg domain.Config
	err error
}

func (s stubConfigProvider) Load(context.Context) (domain.Config, error) { return s.cfg, s.err }
func (s stubConfigProvider) Path() string                               { return s.cfg.Path }

type memFiles map[string]string

func (m memFiles) ReadFile(path string) ([]byte, error) {
	body, ok := m[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return []byte(body), nil
}

func (m memFiles) Exists(path string) bool {
	_, ok := m[path]
	return ok
}

func (m memFiles) IsDir(path string) bool {
	prefix := strings.TrimSuffix(path, "/") + "/"
	for name := range m {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func newService(profiles map[string][]string, files map[string]string) *Service {
	cfg := domain.Config{LibraryDir: "/lib", Profiles: map[string]domain.Profile{}}
	for name, deps := range profiles {
		cfg.Profiles[name] = domain.Profile{Name: name, DependsOn: deps}
	}
	mem := memFiles{}
	for name, body := range files {
		mem[filepath.Join("/lib", name)] = body
	}
	return &Service{ConfigProvider: stubConfigProvider{cfg: cfg}, Files: mem}
}

func strPtr(s string) *string { return &s }

func TestListIsSorted(t *testing.T) {
	svc := newService(map[string][]string{"zeta": nil, "alpha": nil, "python.api": nil}, nil)

	names, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "python.api", "zeta"}, names)
}

func TestListPropagatesConfigErrors(t *testing.T) {
	svc := &Service{ConfigProvider: stubConfigProvider{err: errors.New("no config")}}
	_, err := svc.List(context.Background())
	assert.EqualError(t, err, "no config")
}

func TestRenderDepthFirstWithDedup(t *testing.T) {
	svc := newService(
		map[string][]string{
			"general":    {"core.md"},
			"python":     {"general", "py.md"},
			"python.api": {"python", "api.md", "core.md"},
		},
		map[string]string{"core.md": "CORE\n", "py.md": "PY\n", "api.md": "API\n"},
	)

	res, err := svc.Render(context.Background(), domain.RenderRequest{
		Profiles:   []string{"python.api", "general"},
		Separator:  strPtr(`---\n`),
		PrePrompt:  strPtr(""),
		PostPrompt: strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"core.md", "py.md", "api.md"}, res.Files)
	assert.Equal(t, "CORE\n---\nPY\n---\nAPI\n", res.Output)
}

func TestRenderDefaultsFrameTheBody(t *testing.T) {
	svc := newService(map[string][]string{"a": {"a.md"}}, map[string]string{"a.md": "BODY"})
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	res, err := svc.Render(context.Background(), domain.RenderRequest{Profiles: []string{"a"}, Now: now})
	require.NoError(t, err)
	assert.Contains(t, res.Output, domain.DefaultPrePrompt+"BODY\n")
	assert.Contains(t, res.Output, "Today is 2026-03-01")
}

func TestRenderErrors(t *testing.T) {
	svc := newService(
		map[string][]string{
			"loop.a":  {"loop.b"},
			"loop.b":  {"loop.a"},
			"ghost":   {"nope"},
			"missing": {"gone.md"},
		},
		nil,
	)

	tests := []struct {
		profile string
		want    error
	}{
		{"loop.a", domain.ErrProfileCycle},
		{"ghost", domain.ErrUnknownProfile},
		{"undefined", domain.ErrUnknownProfile},
		{"missing", domain.ErrMissingFile},
	}
	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			_, err := svc.Render(context.Background(), domain.RenderRequest{Profiles: []string{tt.profile}})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := svc.Render(context.Background(), domain.RenderRequest{})
	assert.ErrorIs(t, err, domain.ErrNoProfiles)
}

func TestValidateJoinsAllProblems(t *testing.T) {
	svc := newService(
		map[string][]string{
			"ok":    {"a.md"},
			"loop":  {"loop"},
			"ghost": {"nope"},
			"hole":  {"gone.md"},
		},
		map[string]string{"a.md": "A"},
	)

	err := svc.Validate(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProfileCycle)
	assert.ErrorIs(t, err, domain.ErrUnknownProfile)
	assert.ErrorIs(t, err, domain.ErrMissingFile)
	assert.NotContains(t, err.Error(), "profile ok")
}

func TestValidateClean(t *testing.T) {
	svc := newService(map[string][]string{"a": {"a.md"}, "b": {"a"}}, map[string]string{"a.md": "A"})
	assert.NoError(t, svc.Validate(context.Background()))
}

func TestTreeMarksCyclesAndMissing(t *testing.T) {
	svc := newService(
		map[string][]string{
			"a": {"a.md", "b"},
			"b": {"a", "x.md"},
		},
		map[string]string{"a.md": "A"},
	)

	nodes, err := svc.Tree(context.Background())
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	a := nodes[0]
	assert.Equal(t, "a", a.Name)
	require.Len(t, a.Children, 2)
	assert.Equal(t, domain.NodeFile, a.Children[0].Kind)
	assert.False(t, a.Children[0].Missing)

	b := a.Children[1]
	require.Len(t, b.Children, 2)
	assert.True(t, b.Children[0].Cycle, "a -> b -> a must stop at the repeated profile")
	assert.True(t, b.Children[1].Missing)
}

func TestUnescape(t *testing.T) {
	assert.Equal(t, "a\nb\tc\\d", Unescape(`a\nb\tc\\d`))
	assert.Equal(t, `keep\q`, Unescape(`keep\q`))
	assert.Equal(t, `trailing\`, Unescape(`trailing\`))
	assert.Equal(t, "plain", Unescape("plain"))
}
