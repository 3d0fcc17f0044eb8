package cmdmap

import (
	"os"
	"sort"
	"strconv"
	"strings"
)

// Func is the body of a command. It receives arguments already checked
// against the command's signature.
type Func func(call *Call) (any, error)

// NamedParam is a keyword parameter with a default value.
type NamedParam struct {
	Name    string
	Default string
}

// Signature declares the parameters a command accepts.
type Signature struct {
	// Required lists positional parameters in call order.
	Required []string

	// Variadic names a parameter capturing any positionals left after
	// Required. Empty means no extra positionals are accepted.
	Variadic string

	// Named lists keyword parameters, supplied on the command line as
	// name=value.
	Named []NamedParam
}

// Command is a named unit of work registered with a Mapper.
type Command struct {
	// Name identifies the command on the command line.
	Name string

	// Doc is printed on the diagnostic stream when the command is called
	// with arguments that do not fit its signature.
	Doc string

	Signature Signature

	Run Func
}

// validate checks the command is usable before it enters a registry.
func (c *Command) validate() error {
	if c == nil {
		return newError(ErrCodeInvalidCommand, "command is nil")
	}
	if strings.TrimSpace(c.Name) == "" {
		return newError(ErrCodeInvalidCommand, "command name is required")
	}
	if strings.Contains(c.Name, "=") {
		return newError(ErrCodeInvalidCommand, "command %q: name must not contain '='", c.Name)
	}
	if c.Run == nil {
		return newError(ErrCodeInvalidCommand, "command %q: Run is nil", c.Name)
	}

	seen := make(map[string]struct{})
	check := func(name string) error {
		if name == "" {
			return newError(ErrCodeInvalidCommand, "command %q: empty parameter name", c.Name)
		}
		if strings.Contains(name, "=") {
			return newError(ErrCodeInvalidCommand, "command %q: parameter %q must not contain '='", c.Name, name)
		}
		if _, dup := seen[name]; dup {
			return newError(ErrCodeInvalidCommand, "command %q: duplicate parameter %q", c.Name, name)
		}
		seen[name] = struct{}{}
		return nil
	}

	for _, p := range c.Signature.Required {
		if err := check(p); err != nil {
			return err
		}
	}
	if c.Signature.Variadic != "" {
		if err := check(c.Signature.Variadic); err != nil {
			return err
		}
	}
	for _, p := range c.Signature.Named {
		if err := check(p.Name); err != nil {
			return err
		}
	}
	return nil
}

// Bind checks positionals and options against the command's signature and
// returns the resulting call. Unknown option keys and a positional count
// the signature cannot absorb are reported as *ArityError.
func (c *Command) Bind(positionals []string, options map[string]string) (*Call, error) {
	sig := c.Signature

	if n, want := len(positionals), len(sig.Required); n < want {
		return nil, &ArityError{
			Command: c.Name,
			Reason:  arityReason("missing required argument", sig.Required[n:]),
		}
	} else if n > want && sig.Variadic == "" {
		return nil, &ArityError{
			Command: c.Name,
			Reason:  arityReason("unexpected positional argument", positionals[want:]),
		}
	}

	named := make(map[string]string, len(sig.Named))
	for _, p := range sig.Named {
		named[p.Name] = p.Default
	}
	var unknown []string
	for key, val := range options {
		if _, ok := named[key]; !ok {
			unknown = append(unknown, key)
			continue
		}
		named[key] = val
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &ArityError{
			Command: c.Name,
			Reason:  arityReason("unknown option", unknown),
		}
	}

	args := make(map[string]string, len(sig.Required))
	for i, name := range sig.Required {
		args[name] = positionals[i]
	}

	return &Call{
		Command:     c,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		positionals: clone(positionals),
		args:        args,
		rest:        clone(positionals[len(sig.Required):]),
		options:     named,
	}, nil
}

func arityReason(what string, items []string) string {
	if len(items) == 1 {
		return what + " " + strconv.Quote(items[0])
	}
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = strconv.Quote(it)
	}
	return what + "s " + strings.Join(quoted, ", ")
}
