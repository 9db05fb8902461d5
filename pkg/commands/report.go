package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/serenitas/pkg/commands/options"
	"tableflip.dev/serenitas/pkg/runner/report"
	"tableflip.dev/serenitas/pkg/timeutil"
)

func addReport(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var last string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "show recent entries grouped by the reading they reflect on",
		Long: `Report lists the entries written within the window, grouped by the
library item each one reflects on. Free entries are listed last.`,
		Example: `
serenitas report
serenitas report --last 3d
serenitas report --last 1mes
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			var window time.Duration
			if last != "" {
				w, err := timeutil.ParseWindow(last)
				if err != nil {
					return output.HandleError(err)
				}
				window = w
			}
			s, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			r := report.Report{
				Window:  window,
				ShowID:  io.ShowID,
				Service: s.svc,
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	cmd.Flags().StringVar(&last, "last", "7d", "time window to include, for example 3d or 2w")

	topLevel.AddCommand(cmd)
}
