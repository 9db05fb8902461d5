package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/serenitas/pkg/commands/options"
	"tableflip.dev/serenitas/pkg/runner/journal"
	"tableflip.dev/serenitas/pkg/timeutil"
)

func addJournal(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}
	since := ""

	cmd := &cobra.Command{
		Use:     "journal",
		Short:   "list journal entries, newest first",
		Aliases: []string{"diario", "entries"},
		Example: `
serenitas journal
serenitas journal --show-id
serenitas journal --json
serenitas journal --since 7d
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			var window time.Duration
			if since != "" {
				w, err := timeutil.ParseWindow(since)
				if err != nil {
					return oo.HandleError(err)
				}
				window = w
			}
			s, err := openSession(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			l := journal.List{
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
				Since:   window,
				Service: s.svc,
			}
			return oo.HandleError(l.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().StringVar(&since, "since", "",
		"Only show entries from a recent window, for example 7d, 2w or 1mes.")

	topLevel.AddCommand(cmd)
}
