package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceBlock(t *testing.T) {
	script := "head\n    a)\n        one\n        ;;\n    b)\n        two\n        ;;\ntail\n"
	spec := AnchorSpec{Label: "a", Start: "    a)", Terminator: "\n        ;;\n", Replacement: "    a) NEW\n"}

	got, err := ReplaceBlock(script, spec)
	require.NoError(t, err)
	assert.Equal(t, "head\n    a) NEW\n    b)\n        two\n        ;;\ntail\n", got)
}

func TestReplaceBlockUsesFirstTerminatorAfterStart(t *testing.T) {
	script := "x;;\nSTART body;; rest;;\n"
	got, err := ReplaceBlock(script, AnchorSpec{Start: "START", Terminator: ";;", Replacement: "R"})
	require.NoError(t, err)
	assert.Equal(t, "x;;\nR rest;;\n", got)
}

func TestReplaceBlockErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   error
	}{
		{name: "missing anchor", script: "nothing here", want: ErrAnchorNotFound},
		{name: "missing terminator", script: "START but no end", want: ErrTerminatorNotFound},
		{name: "terminator only before anchor", script: "END START", want: ErrTerminatorNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReplaceBlock(tt.script, AnchorSpec{Label: "blk", Start: "START", Terminator: "END"})
			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "blk")
		})
	}
}

func TestReplaceMarker(t *testing.T) {
	got, ok := ReplaceMarker("a:_default b:_default", ":_default", ":_dyn")
	assert.True(t, ok)
	assert.Equal(t, "a:_dyn b:_default", got)

	got, ok = ReplaceMarker("unchanged", "missing", "x")
	assert.False(t, ok)
	assert.Equal(t, "unchanged", got)
}
