package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/maheshrc27/postflow-tools/internal/tools"
)

var callCmd = &cobra.Command{
	Use:   "call <tool> [arguments-json]",
	Short: "Invoke a single tool and print its JSON result",
	Long: `Invoke a single tool and print its JSON result.

Arguments are given as a JSON object, either inline or on stdin.

Examples:
  socialctl call generate_hashtags '{"content":"Go 1.24 is out","platform":"linkedin"}'
  echo '{"action":"view"}' | socialctl call manage_calendar`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCall,
}

func runCall(cmd *cobra.Command, args []string) error {
	name := args[0]

	var raw []byte
	switch {
	case len(args) == 2:
		raw = []byte(args[1])
	case !stdinIsTerminal():
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read arguments: %w", err)
		}
		raw = data
	}

	result, err := appInst.Registry.Invoke(getContext(), name, json.RawMessage(raw))
	if err != nil {
		_ = writeJSON(cmd.OutOrStdout(), tools.Envelope(name, err))
		return err
	}

	return writeJSON(cmd.OutOrStdout(), result)
}
