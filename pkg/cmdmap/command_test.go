package cmdmap

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(*Call) (any, error) { return nil, nil }

func TestValidateRejectsBadCommands(t *testing.T) {
	tests := []struct {
		name string
		cmd  *Command
	}{
		{"nil command", nil},
		{"empty name", &Command{Name: " ", Run: noop}},
		{"name with separator", &Command{Name: "a=b", Run: noop}},
		{"nil run", &Command{Name: "x"}},
		{"empty param", &Command{Name: "x", Run: noop, Signature: Signature{Required: []string{""}}}},
		{"param with separator", &Command{Name: "x", Run: noop, Signature: Signature{Named: []NamedParam{{Name: "k=v"}}}}},
		{"duplicate required", &Command{Name: "x", Run: noop, Signature: Signature{Required: []string{"a", "a"}}}},
		{"variadic shadows required", &Command{Name: "x", Run: noop, Signature: Signature{Required: []string{"a"}, Variadic: "a"}}},
		{"named shadows required", &Command{Name: "x", Run: noop, Signature: Signature{Required: []string{"a"}, Named: []NamedParam{{Name: "a"}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCommand), "got %v", err)
		})
	}
}

func TestBind(t *testing.T) {
	cmd := &Command{
		Name: "copy",
		Run:  noop,
		Signature: Signature{
			Required: []string{"src", "dst"},
			Variadic: "extra",
			Named:    []NamedParam{{Name: "mode", Default: "0644"}, {Name: "force", Default: "no"}},
		},
	}

	call, err := cmd.Bind([]string{"a", "b", "c", "d"}, map[string]string{"force": "yes"})
	require.NoError(t, err)

	assert.Equal(t, "a", call.Arg("src"))
	assert.Equal(t, "b", call.Arg("dst"))
	assert.Equal(t, []string{"c", "d"}, call.Rest())
	assert.Equal(t, []string{"a", "b", "c", "d"}, call.Args())
	assert.Equal(t, "0644", call.Opt("mode"))
	assert.Equal(t, "yes", call.Opt("force"))
	assert.Equal(t, map[string]string{"mode": "0644", "force": "yes"}, call.Options())
	assert.Same(t, cmd, call.Command)
}

func TestBindVariadicMayBeEmpty(t *testing.T) {
	cmd := &Command{Name: "ls", Run: noop, Signature: Signature{Variadic: "paths"}}

	call, err := cmd.Bind(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, call.Rest())
}

func TestBindMismatches(t *testing.T) {
	cmd := &Command{
		Name: "command3",
		Run:  noop,
		Signature: Signature{
			Required: []string{"argument"},
			Named:    []NamedParam{{Name: "option", Default: "1"}},
		},
	}

	tests := []struct {
		name        string
		positionals []string
		options     map[string]string
		reason      string
	}{
		{"too few", nil, nil, `missing required argument "argument"`},
		{"too many", []string{"a", "b", "c"}, nil, `unexpected positional arguments "b", "c"`},
		{"unknown option", []string{"a"}, map[string]string{"zeta": "1", "alpha": "2"}, `unknown options "alpha", "zeta"`},
		{"positional by keyword", nil, map[string]string{"argument": "a"}, `missing required argument "argument"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cmd.Bind(tt.positionals, tt.options)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrArityMismatch))

			var arity *ArityError
			require.True(t, errors.As(err, &arity))
			assert.Equal(t, "command3", arity.Command)
			assert.Equal(t, tt.reason, arity.Reason)
		})
	}
}

func TestSplitArgs(t *testing.T) {
	positionals, options := splitArgs([]string{"a", "k=v", "b", "k=w", "url=http://x?y=z"})
	assert.Equal(t, []string{"a", "b"}, positionals)
	assert.Equal(t, map[string]string{"k": "w", "url": "http://x?y=z"}, options)

	positionals, options = splitArgs(nil)
	assert.NotNil(t, positionals)
	assert.Empty(t, positionals)
	assert.Empty(t, options)
}

func TestErrorFormatting(t *testing.T) {
	err := newError(ErrCodeInvalidCommand, "command %q: Run is nil", "x")
	assert.Equal(t, `CMDMAP_INVALID_COMMAND: command "x": Run is nil`, err.Error())
	assert.True(t, errors.Is(err, ErrInvalidCommand))
	assert.False(t, errors.Is(err, ErrNoCommandsRegistered))

	cause := errors.New("disk full")
	wrapped := &Error{Code: ErrCodeNoCommands, Message: "load", Cause: cause}
	assert.Equal(t, "CMDMAP_NO_COMMANDS: load: disk full", wrapped.Error())
	assert.True(t, errors.Is(wrapped, cause))

	arity := &ArityError{Command: "c", Reason: "missing required argument \"a\""}
	assert.Equal(t, `c: arity mismatch: missing required argument "a"`, arity.Error())
}

func TestWriteDocDedents(t *testing.T) {
	var buf bytes.Buffer
	WriteDoc(&buf, "\n    Emits a greeting.\n\n    Usage:\n\n        hello [case=upper]\n    ")
	assert.Equal(t, "Emits a greeting.\n\nUsage:\n\n    hello [case=upper]\n", buf.String())
}
