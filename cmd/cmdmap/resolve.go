package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cmdmap/cmdmap/pkg/cmdmap"
	"github.com/cmdmap/cmdmap/pkg/manifest"
)

var (
	flagManifest string
	flagJSON     bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [-- args...]",
	Short: "Show which command an argument vector selects",
	Long: `Resolve an argument vector against a manifest without invoking anything.

Prints the selected command together with the positional arguments and
key=value options it would receive.`,
	Example: `  # First token matches a command name
  cmdmap resolve --manifest suite.toml -- command3 x option=5

  # Unknown first token falls back to the default command
  cmdmap resolve --manifest suite.toml -- nope 1`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return resolveManifest(flagManifest, args, cmd.OutOrStdout(), flagJSON)
	},
}

// resolveOutput is the machine-readable form of an Invocation.
type resolveOutput struct {
	Command     string            `json:"command"`
	Positionals []string          `json:"positionals"`
	Options     map[string]string `json:"options"`
}

func loadMapper(path string, stdout, stderr io.Writer) (*cmdmap.Mapper, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	logger.WithField("manifest", path).WithField("commands", len(m.Commands)).Debug("manifest loaded")
	return m.Mapper(&cmdmap.Config{
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	})
}

func resolveManifest(path string, args []string, w io.Writer, asJSON bool) error {
	mapper, err := loadMapper(path, w, io.Discard)
	if err != nil {
		return err
	}
	inv, err := mapper.Resolve(args)
	if err != nil {
		return fmt.Errorf("failed to resolve: %w", err)
	}

	out := resolveOutput{
		Command:     inv.Command.Name,
		Positionals: inv.Positionals,
		Options:     inv.Options,
	}
	if asJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	}

	fmt.Fprintf(w, "command:     %s\n", out.Command)
	fmt.Fprintf(w, "positionals: [%s]\n", strings.Join(out.Positionals, " "))
	fmt.Fprintf(w, "options:     %s\n", formatOptions(out.Options))
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatOptions(opts map[string]string) string {
	keys := sortedKeys(opts)
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + opts[k]
	}
	return strings.Join(pairs, " ")
}

func init() {
	resolveCmd.Flags().StringVarP(&flagManifest, "manifest", "m", "cmdmap.toml", "Path to the command manifest (.toml or .json)")
	resolveCmd.Flags().BoolVar(&flagJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(resolveCmd)
}
