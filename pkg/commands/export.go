package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/serenitas/pkg/commands/options"
	"tableflip.dev/serenitas/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	eo := &options.ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "export the journal and the library",
		Example: `
serenitas export
serenitas export -o json -f backup.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			format, err := export.ParseFormat(eo.Format)
			if err != nil {
				return err
			}
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			ex := export.Export{
				Format:  format,
				File:    eo.File,
				Service: s.svc,
				Out:     cmd.OutOrStdout(),
			}
			return ex.Do(cmd.Context())
		},
	}

	options.AddExportArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}
