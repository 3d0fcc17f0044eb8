package cmdmap

import (
	"io"
)

// Call carries the arguments bound for one command invocation.
type Call struct {
	// Command is the command being invoked.
	Command *Command

	// Stdout is the normal output stream of the host.
	Stdout io.Writer

	// Stderr is the diagnostic stream of the host.
	Stderr io.Writer

	positionals []string
	args        map[string]string
	rest        []string
	options     map[string]string
}

// Arg returns the value bound to a required positional parameter.
func (c *Call) Arg(name string) string {
	return c.args[name]
}

// Args returns all positional values in command-line order, including the
// variadic tail.
func (c *Call) Args() []string {
	return clone(c.positionals)
}

// Rest returns the positionals captured by the variadic parameter.
func (c *Call) Rest() []string {
	return clone(c.rest)
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// Opt returns the value of a named parameter, or its default when the
// option was not given.
func (c *Call) Opt(name string) string {
	return c.options[name]
}

// Options returns every named parameter with its effective value.
func (c *Call) Options() map[string]string {
	out := make(map[string]string, len(c.options))
	for k, v := range c.options {
		out[k] = v
	}
	return out
}

// Invoke binds and runs another command from inside a command body, using
// the same streams. Signature mismatches are returned as *ArityError and
// are not turned into Halt: if the body returns the error, Run passes it
// to the host unchanged.
func (c *Call) Invoke(cmd *Command, positionals []string, options map[string]string) (any, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}
	nested, err := cmd.Bind(positionals, options)
	if err != nil {
		return nil, err
	}
	nested.Stdout = c.Stdout
	nested.Stderr = c.Stderr
	return cmd.Run(nested)
}
