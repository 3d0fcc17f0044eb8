package cmdmap

import "strings"

// Invocation is a resolved command plus the arguments split out of the
// raw argument vector.
type Invocation struct {
	Command     *Command
	Positionals []string
	Options     map[string]string
}

// splitArgs partitions tokens into positionals and key=value options.
// The key ends at the first '='; later keys overwrite earlier ones.
func splitArgs(tokens []string) ([]string, map[string]string) {
	positionals := []string{}
	options := map[string]string{}
	for _, tok := range tokens {
		if key, val, ok := strings.Cut(tok, "="); ok {
			options[key] = val
			continue
		}
		positionals = append(positionals, tok)
	}
	return positionals, options
}
