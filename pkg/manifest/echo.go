package manifest

import "github.com/cmdmap/cmdmap/pkg/cmdmap"

// Binding is what a manifest command received after binding.
type Binding struct {
	Command string            `json:"command"`
	Args    map[string]string `json:"args"`
	Rest    []string          `json:"rest"`
	Options map[string]string `json:"options"`
}

// Echo is the body of every manifest command: it returns its Binding
// instead of doing any work.
func Echo(call *cmdmap.Call) (any, error) {
	sig := call.Command.Signature
	args := make(map[string]string, len(sig.Required))
	for _, name := range sig.Required {
		args[name] = call.Arg(name)
	}
	return Binding{
		Command: call.Command.Name,
		Args:    args,
		Rest:    call.Rest(),
		Options: call.Options(),
	}, nil
}
