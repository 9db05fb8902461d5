package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/serenitas/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server on stdio that exposes the journal, the library and
discovery through the Model Context Protocol.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			runner := mcp.Runner{
				App:     s.svc,
				Log:     s.log,
				Name:    "serenitas",
				Version: "dev",
			}
			return runner.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
