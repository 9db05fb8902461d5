package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/serenitas/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about where the journal and library are stored.",
		Example: `
serenitas info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			i := info.Info{
				Config:  s.cfg,
				Service: s.svc,
			}
			return output.HandleError(i.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
