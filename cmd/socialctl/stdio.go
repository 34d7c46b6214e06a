package main

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/maheshrc27/postflow-tools/internal/tools"
)

const maxLineSize = 4 << 20

var stdioCmd = &cobra.Command{
	Use:   "stdio",
	Short: "Serve tool calls as line-delimited JSON on stdin/stdout",
	Long: `Serve tool calls as line-delimited JSON on stdin/stdout.

Each request is one line:
  {"id": 1, "tool": "create_post", "arguments": {...}}

Each response is one line carrying the same id and either "result" or
"error". Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveLines(getContext(), appInst.Registry, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

type lineRequest struct {
	ID        json.RawMessage `json:"id,omitempty"`
	Tool      string          `json:"tool"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

type lineResponse struct {
	ID     json.RawMessage `json:"id,omitempty"`
	Tool   string          `json:"tool,omitempty"`
	Result any             `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

type invoker interface {
	Invoke(ctx context.Context, name string, args json.RawMessage) (any, error)
}

// serveLines answers one request per input line until r is exhausted.
func serveLines(ctx context.Context, registry invoker, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	enc := json.NewEncoder(w)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req lineRequest
		if err := json.Unmarshal(line, &req); err != nil {
			slog.Info("malformed request line", "error", err)
			if err := enc.Encode(lineResponse{Error: "malformed request: " + err.Error()}); err != nil {
				return err
			}
			continue
		}

		resp := lineResponse{ID: req.ID, Tool: req.Tool}
		result, err := registry.Invoke(ctx, req.Tool, req.Arguments)
		if err != nil {
			resp.Error = tools.Envelope(req.Tool, err).Error
		} else {
			resp.Result = result
		}

		if err := enc.Encode(resp); err != nil {
			return err
		}
	}

	return scanner.Err()
}
