// Package cmdmap maps a process argument vector onto a set of registered
// commands.
//
// A host registers one or more commands, each with a declared signature
// (required positional parameters, an optional variadic tail and named
// parameters with defaults). At run time the mapper picks one command,
// splits the remaining tokens into positionals and key=value options,
// checks them against the signature and calls the command.
//
// Usage as library:
//
//	m := cmdmap.New(&cmdmap.Config{Usage: usage})
//	m.MustRegister(&cmdmap.Command{
//		Name:      "greet",
//		Signature: cmdmap.Signature{Required: []string{"who"}},
//		Run: func(call *cmdmap.Call) (any, error) {
//			fmt.Fprintf(call.Stdout, "hello, %s\n", call.Arg("who"))
//			return nil, nil
//		},
//	})
//	out, err := m.Run()
//	if err != nil || out.Halted() {
//		os.Exit(1)
//	}
//
// Resolution rules:
//   - no arguments selects the first registered command;
//   - with a single registered command, every token is an argument;
//   - otherwise the first token is matched against command names and,
//     when nothing matches, all tokens go to the first registered command.
//
// A signature mismatch at the mapper's own call boundary yields Halt and
// prints the command's documentation, if any. A mismatch raised from
// inside a command body (see Call.Invoke) is returned as an error.
package cmdmap
