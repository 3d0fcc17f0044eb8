package cmdmap

import (
	"errors"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Config holds construction-time settings for a Mapper.
type Config struct {
	// Usage is printed on Stderr when Run finds no registered commands.
	// If empty, Run returns ErrNoCommandsRegistered instead.
	Usage string

	// Stdout is handed to commands as their normal output stream.
	Stdout io.Writer

	// Stderr is the diagnostic stream for usage and documentation text.
	Stderr io.Writer

	// Logger receives debug entries about resolution and invocation.
	Logger log.FieldLogger

	// Args supplies the raw argument vector, without the program name, on
	// every Run. Default: os.Args[1:].
	Args func() []string
}

// DefaultConfig returns a configuration wired to the process streams and
// arguments, with logging discarded.
func DefaultConfig() *Config {
	return &Config{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: discardLogger(),
		Args:   processArgs,
	}
}

func discardLogger() log.FieldLogger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}

func processArgs() []string {
	if len(os.Args) < 2 {
		return nil
	}
	return os.Args[1:]
}

// Mapper is a registry of commands plus the engine that dispatches an
// argument vector to one of them.
//
// Registration is not safe for concurrent use; register everything before
// the first Run.
type Mapper struct {
	config   *Config
	commands []*Command
	fallback *Command
	sealed   bool
}

// New creates a Mapper. If config is nil, DefaultConfig is used; unset
// fields of a non-nil config take their defaults.
func New(config *Config) *Mapper {
	def := DefaultConfig()
	if config == nil {
		config = def
	}
	cfg := *config
	if cfg.Stdout == nil {
		cfg.Stdout = def.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = def.Stderr
	}
	if cfg.Logger == nil {
		cfg.Logger = def.Logger
	}
	if cfg.Args == nil {
		cfg.Args = def.Args
	}
	return &Mapper{config: &cfg}
}

// Register appends cmd to the registry and returns it unchanged. The
// first registered command becomes the default command. Registering after
// the first Run fails with ErrRegistrationClosed.
func (m *Mapper) Register(cmd *Command) (*Command, error) {
	if m.sealed {
		name := ""
		if cmd != nil {
			name = cmd.Name
		}
		return nil, newError(ErrCodeRegistrationClosed, "cannot register %q after run", name)
	}
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	m.commands = append(m.commands, cmd)
	if m.fallback == nil {
		m.fallback = cmd
	}
	m.config.Logger.WithField("command", cmd.Name).Debug("command registered")
	return cmd, nil
}

// MustRegister is like Register but panics on error.
func (m *Mapper) MustRegister(cmd *Command) *Command {
	c, err := m.Register(cmd)
	if err != nil {
		panic(err)
	}
	return c
}

// Commands returns the registered commands in registration order.
func (m *Mapper) Commands() []*Command {
	return append([]*Command(nil), m.commands...)
}

// Default returns the default command, or nil if none is registered.
func (m *Mapper) Default() *Command {
	return m.fallback
}

// Lookup returns the first registered command with the given name.
func (m *Mapper) Lookup(name string) (*Command, bool) {
	for _, c := range m.commands {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Resolve selects the command targeted by args and splits the remaining
// tokens into positionals and options. It does not invoke anything.
func (m *Mapper) Resolve(args []string) (*Invocation, error) {
	if len(m.commands) == 0 {
		return nil, newError(ErrCodeNoCommands, "no commands registered")
	}

	cmd, rest, reason := m.fallback, args, "default"
	switch {
	case len(args) == 0:
		reason = "no arguments"
	case len(m.commands) == 1:
		reason = "single command"
	default:
		if c, ok := m.Lookup(args[0]); ok {
			cmd, rest, reason = c, args[1:], "name match"
		} else {
			reason = "no name match"
		}
	}

	positionals, options := splitArgs(rest)
	m.config.Logger.WithFields(log.Fields{
		"command":     cmd.Name,
		"reason":      reason,
		"positionals": positionals,
		"options":     options,
	}).Debug("command resolved")

	return &Invocation{Command: cmd, Positionals: positionals, Options: options}, nil
}

// Invoke checks positionals and options against cmd's signature and calls
// it. A mismatch at this boundary prints cmd.Doc on Stderr and yields
// Halt. Errors returned by the command body, including *ArityError from
// nested calls, are returned unchanged.
func (m *Mapper) Invoke(cmd *Command, positionals []string, options map[string]string) (Outcome, error) {
	if err := cmd.validate(); err != nil {
		return Outcome{}, err
	}
	call, err := cmd.Bind(positionals, options)
	if err != nil {
		var arity *ArityError
		if !errors.As(err, &arity) {
			return Outcome{}, err
		}
		m.config.Logger.WithFields(log.Fields{
			"command": cmd.Name,
			"reason":  arity.Reason,
		}).Debug("arity mismatch at call boundary")
		if cmd.Doc != "" {
			WriteDoc(m.config.Stderr, cmd.Doc)
		}
		return Halt, nil
	}
	call.Stdout = m.config.Stdout
	call.Stderr = m.config.Stderr

	v, err := cmd.Run(call)
	if err != nil {
		m.config.Logger.WithError(err).WithField("command", cmd.Name).Debug("command failed")
		return Outcome{}, err
	}
	return outcomeOf(v), nil
}

// Run resolves the configured argument vector and invokes the selected
// command. Each call re-reads the arguments and is independent of earlier
// calls. The first Run closes registration.
func (m *Mapper) Run() (Outcome, error) {
	return m.RunArgs(m.config.Args())
}

// RunArgs is like Run but dispatches the given argument vector.
func (m *Mapper) RunArgs(args []string) (Outcome, error) {
	m.sealed = true

	inv, err := m.Resolve(args)
	if err != nil {
		if errors.Is(err, ErrNoCommandsRegistered) && m.config.Usage != "" {
			writeUsage(m.config.Stderr, m.config.Usage)
			return Halt, nil
		}
		return Outcome{}, err
	}
	return m.Invoke(inv.Command, inv.Positionals, inv.Options)
}
