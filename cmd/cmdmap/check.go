package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cmdmap/cmdmap/pkg/manifest"
)

var checkCmd = &cobra.Command{
	Use:   "check [-- args...]",
	Short: "Resolve and bind an argument vector",
	Long: `Resolve an argument vector against a manifest and bind it to the selected
command's signature.

On a signature mismatch the command's documentation is printed on stderr
and the exit status is 1, exactly as a host program would behave.`,
	Example: `  cmdmap check --manifest suite.toml -- command3 x option=5`,
	Args:    cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return checkManifest(flagManifest, args, cmd.OutOrStdout(), cmd.ErrOrStderr(), flagJSON)
	},
}

func checkManifest(path string, args []string, stdout, stderr io.Writer, asJSON bool) error {
	mapper, err := loadMapper(path, stdout, stderr)
	if err != nil {
		return err
	}
	out, err := mapper.RunArgs(args)
	if err != nil {
		return err
	}
	if out.Halted() {
		return errHalted
	}

	binding, ok := out.Value.(manifest.Binding)
	if !ok {
		return fmt.Errorf("unexpected result %T", out.Value)
	}
	if asJSON {
		encoder := json.NewEncoder(stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(binding)
	}

	fmt.Fprintf(stdout, "command: %s\n", binding.Command)
	for _, name := range sortedKeys(binding.Args) {
		fmt.Fprintf(stdout, "  %s = %s\n", name, binding.Args[name])
	}
	if len(binding.Rest) > 0 {
		fmt.Fprintf(stdout, "  (rest) = %s\n", strings.Join(binding.Rest, " "))
	}
	for _, name := range sortedKeys(binding.Options) {
		fmt.Fprintf(stdout, "  %s = %s\n", name, binding.Options[name])
	}
	return nil
}

func init() {
	checkCmd.Flags().StringVarP(&flagManifest, "manifest", "m", "cmdmap.toml", "Path to the command manifest (.toml or .json)")
	checkCmd.Flags().BoolVar(&flagJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(checkCmd)
}
